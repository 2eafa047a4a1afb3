package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRpcResponse_HasResult(t *testing.T) {
	tests := []struct {
		result string
		want   bool
	}{
		{result: "", want: false},
		{result: "null", want: false},
		{result: "false", want: false},
		{result: `""`, want: false},
		{result: "0", want: false},
		{result: "-0", want: false},
		{result: "0.0", want: false},
		{result: "0e0", want: false},
		{result: " 0 ", want: false},
		{result: "1", want: true},
		{result: "-1", want: true},
		{result: "0.001", want: true},
		{result: `"0x0"`, want: true},
		{result: "true", want: true},
		{result: "[]", want: true},
		{result: "{}", want: true},
	}
	for _, tt := range tests {
		t.Run(tt.result, func(t *testing.T) {
			r := RpcResponse{Result: json.RawMessage(tt.result)}
			assert.Equal(t, tt.want, r.HasResult())
		})
	}
}
