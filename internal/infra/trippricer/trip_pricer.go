// Package trippricer is an in-process stand-in for the external trip
// pricing engine.
package trippricer

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"tourguide/internal/domain/entity"
	"tourguide/internal/domain/service"

	"github.com/google/uuid"
)

const offerCount = 10

type tripPricer struct {
	randMu sync.Mutex
	rand   *rand.Rand
}

// New creates a simulated trip pricing service.
func New() service.TripPricerService {
	return &tripPricer{
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Price quotes ten offers with unique provider names. Accumulated
// reward points are applied as a flat discount, floored at zero.
func (t *tripPricer) Price(ctx context.Context, _ string, tripID uuid.UUID, adults, children, nights, rewardPoints int) ([]entity.Provider, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Name pool local to this call; each pick removes its entry so a
	// quote never repeats a provider.
	pool := map[int]string{
		1:  "Holiday Travels",
		2:  "Enterprize Ventures Limited",
		3:  "Sunny Days",
		4:  "FlyAway Trips",
		5:  "United Partners Vacations",
		6:  "Dream Trips",
		7:  "Live Free",
		8:  "Dancing Waves Cruselines and Partners",
		9:  "AdventureCo",
		10: "Cure-Your-Blues",
	}

	providers := make([]entity.Provider, 0, offerCount)
	for i := 0; i < offerCount; i++ {
		t.randMu.Lock()
		multiple := t.rand.Intn(600) + 100
		t.randMu.Unlock()

		childrenDiscount := float64(children) / 3.0
		price := float64(multiple*adults) + float64(multiple)*childrenDiscount*float64(nights) + 0.99 - float64(rewardPoints)
		if price < 0 {
			price = 0
		}

		providers = append(providers, entity.Provider{
			Name:   t.takeProviderName(pool),
			Price:  price,
			TripID: tripID,
		})
	}

	return providers, nil
}

// takeProviderName picks a random remaining name and removes it from
// the pool.
func (t *tripPricer) takeProviderName(pool map[int]string) string {
	t.randMu.Lock()
	key := t.rand.Intn(10) + 1
	t.randMu.Unlock()

	for {
		if name, ok := pool[key]; ok {
			delete(pool, key)

			return name
		}
		if key == 10 {
			key = 1
		} else {
			key++
		}
	}
}
