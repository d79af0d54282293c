package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProductWithPrice(t *testing.T) {
	original := Product{ID: 1, Name: "Atlas", Category: "Books", Price: 120_00}

	discounted := original.WithPrice(108_00)

	assert.Equal(t, int64(108_00), discounted.Price)
	assert.Equal(t, int64(120_00), original.Price)
	assert.Equal(t, original.ID, discounted.ID)
}

func TestDay(t *testing.T) {
	moscow := time.FixedZone("MSK", 3*60*60)

	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			name: "strips time of day",
			in:   time.Date(2021, time.March, 15, 17, 42, 13, 999, time.UTC),
			want: time.Date(2021, time.March, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "keeps wall-clock date of the zone",
			in:   time.Date(2021, time.March, 15, 1, 30, 0, 0, moscow),
			want: time.Date(2021, time.March, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "midnight is a fixed point",
			in:   time.Date(2021, time.March, 15, 0, 0, 0, 0, time.UTC),
			want: time.Date(2021, time.March, 15, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, Day(tt.in).Equal(tt.want))
		})
	}
}

func TestNewOrderNormalizesDate(t *testing.T) {
	order := NewOrder(
		time.Date(2021, time.February, 10, 23, 59, 59, 0, time.UTC),
		7,
		[]int64{1, 2},
	)

	assert.True(t, order.OrderDate.Equal(time.Date(2021, time.February, 10, 0, 0, 0, 0, time.UTC)))
}
