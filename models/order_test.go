package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPizzaSizeIsValid(t *testing.T) {
	for _, size := range []PizzaSize{SizeSmall, SizeMedium, SizeLarge, SizeExtraLarge} {
		assert.True(t, size.IsValid(), "size %s", size)
	}
	assert.False(t, PizzaSize("HUGE").IsValid())
	assert.False(t, PizzaSize("small").IsValid())
	assert.False(t, PizzaSize("").IsValid())
}

func TestOrderStatusIsValid(t *testing.T) {
	for _, status := range []OrderStatus{StatusPending, StatusInTransit, StatusDelivered} {
		assert.True(t, status.IsValid(), "status %s", status)
	}
	assert.False(t, OrderStatus("IN_PROGRESS").IsValid())
	assert.False(t, OrderStatus("pending").IsValid())
	assert.False(t, OrderStatus("").IsValid())
}
