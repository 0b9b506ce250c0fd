// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package models

import (
	"gopkg.in/typ.v4/sync2"

	"github.com/Lama2323/para/pkg/constants"
)

// Pool reusable objects to reduce garbage collector
type Pool struct {
	InputBatches *sync2.Pool[[]Input]
}

func NewPool() *Pool {
	return &Pool{
		InputBatches: &sync2.Pool[[]Input]{
			New: func() []Input {
				return make([]Input, 0, constants.BatchSize)
			},
		},
	}
}
