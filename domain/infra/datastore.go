package infra

import (
	"context"

	"github.com/pyama86/inquiry-relay/domain/model"
)

type Datastore interface {
	// 問い合わせを1件保存する。同じ ID があれば上書きされる
	SaveInquiry(context.Context, *model.Inquiry) error
	// ID で問い合わせを取得する。見つからなければ nil を返す
	GetInquiry(context.Context, string) (*model.Inquiry, error)
}
