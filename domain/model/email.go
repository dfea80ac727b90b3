package model

import (
	"fmt"
	"strings"
)

// プレーンテキストのメール1通
type Email struct {
	From    string
	To      []string
	Subject string
	Body    string
}

func (e Email) String() string {
	return fmt.Sprintf("from:%s to:%s subject:%s", e.From, strings.Join(e.To, ","), e.Subject)
}
