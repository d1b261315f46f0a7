package dto

// ConvertRequest asks for an amount to be converted between two currencies.
// Amounts travel as decimal strings so no precision is lost in JSON.
type ConvertRequest struct {
	Amount string `json:"amount" binding:"required"`
	From   string `json:"from" binding:"required,len=3"`
	To     string `json:"to" binding:"required,len=3"`
	Format bool   `json:"format"`
}

// ConvertResponse carries a converted amount and, when requested, its display string.
type ConvertResponse struct {
	Amount    string `json:"amount"`
	From      string `json:"from"`
	To        string `json:"to"`
	Converted string `json:"converted"`
	Formatted string `json:"formatted,omitempty"`
}

// ConvertBatchRequest converts several amounts, e.g. order lines, with one pair.
type ConvertBatchRequest struct {
	Amounts []string `json:"amounts" binding:"required,min=1,max=500"`
	From    string   `json:"from" binding:"required,len=3"`
	To      string   `json:"to" binding:"required,len=3"`
}

// ConvertBatchResponse lists converted amounts in request order.
type ConvertBatchResponse struct {
	From      string   `json:"from"`
	To        string   `json:"to"`
	Converted []string `json:"converted"`
}

// FormatRequest asks for an amount to be rendered in a currency's display style.
type FormatRequest struct {
	Amount       string `json:"amount" binding:"required"`
	CurrencyCode string `json:"currencyCode" binding:"required,len=3"`
}

// FormatResponse carries the display string.
type FormatResponse struct {
	Amount       string `json:"amount"`
	CurrencyCode string `json:"currencyCode"`
	Formatted    string `json:"formatted"`
}
