// Package domain はcontentフィーチャーのドメインレベルのエラーを定義します。
package domain

import "errors"

var (
	// ErrNotFound は指定された識別子のエンティティが存在しない場合に返されます。
	// 削除済みエンティティへの更新・再削除の際にも返されます。
	ErrNotFound = errors.New("content entity not found")
)
