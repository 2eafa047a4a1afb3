package nimiq

// Method names understood by the host application.
const (
	MethodRequestAccounts               = "requestAccounts"
	MethodListAccounts                  = "listAccounts"
	MethodSign                          = "sign"
	MethodIsConsensusEstablished        = "isConsensusEstablished"
	MethodGetBlockNumber                = "getBlockNumber"
	MethodSendBasicTransaction          = "sendBasicTransaction"
	MethodSendBasicTransactionWithData  = "sendBasicTransactionWithData"
	MethodSendNewStakerTransaction      = "sendNewStakerTransaction"
	MethodSendStakeTransaction          = "sendStakeTransaction"
	MethodSendSetActiveStakeTransaction = "sendSetActiveStakeTransaction"
	MethodSendUpdateStakerTransaction   = "sendUpdateStakerTransaction"
	MethodSendRetireStakeTransaction    = "sendRetireStakeTransaction"
	MethodSendRemoveStakeTransaction    = "sendRemoveStakeTransaction"
)

// Methods maps public, network-prefixed names to host method names.
// Anything missing here is rejected by Request.
var Methods = map[string]string{
	"nim_requestAccounts":               MethodRequestAccounts,
	"nim_isConsensusEstablished":        MethodIsConsensusEstablished,
	"nim_listAccounts":                  MethodListAccounts,
	"nim_sign":                          MethodSign,
	"nim_getBlockNumber":                MethodGetBlockNumber,
	"nim_sendBasicTransaction":          MethodSendBasicTransaction,
	"nim_sendBasicTransactionWithData":  MethodSendBasicTransactionWithData,
	"nim_sendNewStakerTransaction":      MethodSendNewStakerTransaction,
	"nim_sendStakeTransaction":          MethodSendStakeTransaction,
	"nim_sendSetActiveStakeTransaction": MethodSendSetActiveStakeTransaction,
	"nim_sendUpdateStakerTransaction":   MethodSendUpdateStakerTransaction,
	"nim_sendRetireStakeTransaction":    MethodSendRetireStakeTransaction,
	"nim_sendRemoveStakeTransaction":    MethodSendRemoveStakeTransaction,
}

func Normalize(method string) (string, bool) {
	internal, ok := Methods[method]
	return internal, ok
}
