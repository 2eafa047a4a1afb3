package env

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")

	content := "APP_NAME=gateway-test\nPORT=9090\nJSON_RPC_URL=http://localhost:8545\nBRIDGE_TIMEOUT=5s\nRPC_VIA_BRIDGE=true\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Read(path)
	require.NoError(t, err)

	require.Equal(t, "gateway-test", cfg.AppConfig.Name)
	require.Equal(t, uint(9090), cfg.AppConfig.Port)
	require.Equal(t, "http://localhost:8545", cfg.AppConfig.JsonRpcURL)
	require.True(t, cfg.AppConfig.RpcViaBridge)
	require.Equal(t, 5*time.Second, cfg.AppConfig.BridgeTimeout)

	// defaults survive when the file does not mention a key
	require.Equal(t, "local", cfg.AppConfig.Env)
	require.Equal(t, defaultBridgeSubject, cfg.AppConfig.BridgeSubject)
	require.Equal(t, "web3_provider", cfg.AppConfig.MetricsPrefix)
}
