package model

import (
	"strconv"
	"time"
)

const (
	InquiryIDPrefix = "INQ-"
	// JavaScript の toISOString と同じ形式(UTC・ミリ秒)
	TimestampLayout = "2006-01-02T15:04:05.000Z07:00"
)

// 問い合わせフォームから受け付けた1件の問い合わせ。作成後は更新しない
type Inquiry struct {
	ID        string    `gorm:"primary_key;type:varchar(32)" json:"inquiry_id"`
	Name      string    `gorm:"type:varchar(255)" json:"name"`
	Email     string    `gorm:"type:varchar(255)" json:"email"`
	Message   string    `gorm:"type:text" json:"message"`
	CreatedAt time.Time `json:"timestamp"`
}

// NewInquiryID はミリ秒単位の時刻から ID を作る。
// 同一ミリ秒に受け付けた問い合わせは同じ ID になる。
func NewInquiryID(now time.Time) string {
	return InquiryIDPrefix + strconv.FormatInt(now.UnixMilli(), 10)
}

func (i *Inquiry) Timestamp() string {
	return i.CreatedAt.UTC().Format(TimestampLayout)
}

func ParseTimestamp(s string) (time.Time, error) {
	return time.Parse(TimestampLayout, s)
}
