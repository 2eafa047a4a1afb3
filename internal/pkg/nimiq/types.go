package nimiq

// SignMessage is the structured form every Sign input is normalized to.
type SignMessage struct {
	Message string `json:"message"`
	IsHex   bool   `json:"isHex,omitempty"`
}

type SignedMessage struct {
	PublicKey string `json:"publicKey"`
	Signature string `json:"signature"`
}

// Fees holds the optional fields shared by every transaction.
// Values are in luna.
type Fees struct {
	Fee                 *uint64 `json:"fee,omitempty"`
	ValidityStartHeight *uint32 `json:"validityStartHeight,omitempty"`
}

type BasicTransaction struct {
	Recipient string `json:"recipient"`
	Value     uint64 `json:"value"`
	Fees
}

type BasicTransactionWithData struct {
	Recipient string `json:"recipient"`
	Value     uint64 `json:"value"`
	Data      string `json:"data"`
	Fees
}

type NewStakerTransaction struct {
	Delegation string `json:"delegation"`
	Value      uint64 `json:"value"`
	Fees
}

type StakeTransaction struct {
	Staker string `json:"staker"`
	Value  uint64 `json:"value"`
	Fees
}

type SetActiveStakeTransaction struct {
	NewActiveBalance uint64 `json:"newActiveBalance"`
	Fees
}

type UpdateStakerTransaction struct {
	NewDelegation      string `json:"newDelegation"`
	ReactivateAllStake bool   `json:"reactivateAllStake"`
	Fees
}

type RetireStakeTransaction struct {
	RetireStake uint64 `json:"retireStake"`
	Fees
}

type RemoveStakeTransaction struct {
	Recipient string `json:"recipient,omitempty"`
	Value     uint64 `json:"value"`
	Fees
}
