package oklink

// Raw OKLink API payloads. JSON is decoded into these primitive structs
// before normalization into domain types; every field is a string on the
// wire, even the semantically numeric ones.

type inscriptionRaw struct {
	ActionType    string `json:"actionType"`
	Amount        string `json:"amount"`
	FromAddress   string `json:"fromAddress"`
	InscriptionId string `json:"inscriptionId"`
	State         string `json:"state"`
	Time          string `json:"time"`
	ToAddress     string `json:"toAddress"`
	Token         string `json:"token"`
	TokenType     string `json:"tokenType"`
	TxId          string `json:"txId"`
}

type paginationRaw struct {
	InscriptionsList []inscriptionRaw `json:"inscriptionsList"`
	Limit            string           `json:"limit"`
	Page             string           `json:"page"`
	TotalPage        string           `json:"totalPage"`
	TotalTransaction string           `json:"totalTransaction"`
}

type responseRaw struct {
	Data []paginationRaw `json:"data"`
}
