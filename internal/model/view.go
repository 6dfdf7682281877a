package model

// AccountView is the wire-facing projection of a bank account. Balance is a
// display string fixed to two decimal places.
type AccountView struct {
	AccountHolderName string `json:"accountHolderName"`
	ContactNumber     string `json:"contactNumber"`
	IDCard            string `json:"idCard"`
	EmailAddress      string `json:"emailAddress"`
	Balance           string `json:"balance"`
	Description       string `json:"description"`
	BankCardNumber    string `json:"bankCardNumber"`
	UserID            string `json:"userId"`
}

// AccountPage wraps one page of account views with 1-indexed page metadata.
type AccountPage struct {
	PageNo   int           `json:"pageNo"`
	PageSize int           `json:"pageSize"`
	Total    int64         `json:"total"`
	Data     []AccountView `json:"data"`
}
