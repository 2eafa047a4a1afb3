package entity

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// EthBlock is the non-verbose block form: transactions are hashes only.
type EthBlock struct {
	BaseFeePerGas    *hexutil.Big   `json:"baseFeePerGas,omitempty"`
	Difficulty       *hexutil.Big   `json:"difficulty,omitempty"`
	ExtraData        hexutil.Bytes  `json:"extraData"`
	GasLimit         hexutil.Uint64 `json:"gasLimit"`
	GasUsed          hexutil.Uint64 `json:"gasUsed"`
	Hash             common.Hash    `json:"hash"`
	LogsBloom        string         `json:"logsBloom"`
	Miner            common.Address `json:"miner"`
	MixHash          string         `json:"mixHash"`
	Nonce            string         `json:"nonce"`
	Number           hexutil.Uint64 `json:"number"`
	ParentHash       common.Hash    `json:"parentHash"`
	ReceiptsRoot     string         `json:"receiptsRoot"`
	Sha3Uncles       string         `json:"sha3Uncles"`
	Size             hexutil.Uint64 `json:"size"`
	StateRoot        string         `json:"stateRoot"`
	Timestamp        hexutil.Uint64 `json:"timestamp"`
	TransactionsRoot string         `json:"transactionsRoot"`
	Transactions     []common.Hash  `json:"transactions"`
}

func (e *EthBlock) GetNumber() uint64 {
	return uint64(e.Number)
}

func (e *EthBlock) GetTimestamp() int64 {
	return int64(e.Timestamp)
}
