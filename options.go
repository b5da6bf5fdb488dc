// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package spatial

import "go.uber.org/zap"

// DefaultMaxItemsPerNode is the leaf capacity used when none is configured.
const DefaultMaxItemsPerNode = 64

// Option configures a Tree at construction time.
type Option func(*options)

type options struct {
	maxItems int
	storage  ItemStorage
	expected int
	logger   *zap.Logger
}

func defaultOptions() options {
	return options{
		maxItems: DefaultMaxItemsPerNode,
		storage:  GrowableItems,
		logger:   zap.NewNop(),
	}
}

// WithMaxItemsPerNode sets how many items a leaf holds before it splits.
func WithMaxItemsPerNode(n int) Option {
	return func(o *options) {
		o.maxItems = n
	}
}

// WithItemStorage selects the item list storage policy.
func WithItemStorage(s ItemStorage) Option {
	return func(o *options) {
		o.storage = s
	}
}

// WithExpectedItems reserves arena capacity up front. It has no effect on
// behaviour.
func WithExpectedItems(n int) Option {
	return func(o *options) {
		o.expected = n
	}
}

// WithLogger sets the logger used for debug output and integrity failures.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
