package domain

import "time"

// VocabWord is a generated or saved vocabulary item.
type VocabWord struct {
	ID       string     `json:"id"`
	Chinese  string     `json:"chinese"`
	Pinyin   string     `json:"pinyin"`
	Zhuyin   string     `json:"zhuyin"`
	Japanese string     `json:"japanese"`
	Category string     `json:"category"`
	SavedAt  *time.Time `json:"savedAt,omitempty"`
}

// IsSaved reports whether the word has been promoted into the saved set.
func (w VocabWord) IsSaved() bool { return w.SavedAt != nil }

// QuotaCounter is the persisted daily generation counter.
// Date is a calendar day formatted as YYYY-MM-DD.
type QuotaCounter struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// QuotaStatus is the quota view returned to clients.
type QuotaStatus struct {
	Date      string `json:"date"`
	Used      int    `json:"used"`
	Limit     int    `json:"limit"`
	Remaining int    `json:"remaining"`
}
