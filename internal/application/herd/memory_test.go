package herd

// Dobles en memoria de los cuatro repositorios y del TxRunner, suficientes
// para ejercitar el motor de reconciliación sin PostgreSQL. El orden FIFO
// (base_date, created_seq) se respeta igual que en los adaptadores reales.

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jcastano/ganaderia-api/internal/domain/entity"
	"github.com/jcastano/ganaderia-api/internal/domain/repository"
)

type memStore struct {
	batches    []*entity.Batch
	stocks     map[string]*entity.Stock
	movements  []*entity.Movement
	properties map[string]*entity.Property
	seq        int64
}

func newMemStore() *memStore {
	return &memStore{
		stocks:     make(map[string]*entity.Stock),
		properties: make(map[string]*entity.Property),
	}
}

func stockKey(propertyID, species, sex, bracket string) string {
	return strings.Join([]string{propertyID, species, sex, bracket}, "|")
}

type memBatchRepo struct{ s *memStore }

func (r *memBatchRepo) Create(batch *entity.Batch) error {
	b := *batch
	r.s.seq++
	b.CreatedSeq = r.s.seq
	batch.CreatedSeq = b.CreatedSeq
	r.s.batches = append(r.s.batches, &b)
	return nil
}

func (r *memBatchRepo) ListLive(propertyID, species string) ([]*entity.Batch, error) {
	return r.filter(func(b *entity.Batch) bool {
		return b.PropertyID == propertyID && b.Species == species && b.CurrentQuantity > 0
	}), nil
}

func (r *memBatchRepo) ListLiveByBracket(propertyID, species, sex, bracket string) ([]*entity.Batch, error) {
	return r.filter(func(b *entity.Batch) bool {
		return b.PropertyID == propertyID && b.Species == species &&
			b.Sex == sex && b.CurrentBracket == bracket && b.CurrentQuantity > 0
	}), nil
}

func (r *memBatchRepo) filter(keep func(*entity.Batch) bool) []*entity.Batch {
	var out []*entity.Batch
	for _, b := range r.s.batches {
		if keep(b) {
			c := *b
			out = append(out, &c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].BaseDate.Equal(out[j].BaseDate) {
			return out[i].BaseDate.Before(out[j].BaseDate)
		}
		return out[i].CreatedSeq < out[j].CreatedSeq
	})
	return out
}

func (r *memBatchRepo) UpdateBracket(id, bracket string) error {
	for _, b := range r.s.batches {
		if b.ID == id {
			b.CurrentBracket = bracket
			return nil
		}
	}
	return nil
}

func (r *memBatchRepo) UpdateQuantity(id string, quantity int64) error {
	for _, b := range r.s.batches {
		if b.ID == id {
			b.CurrentQuantity = quantity
			return nil
		}
	}
	return nil
}

func (r *memBatchRepo) DeleteByProperty(propertyID string, species []string) error {
	var kept []*entity.Batch
	for _, b := range r.s.batches {
		if b.PropertyID == propertyID && contains(species, b.Species) {
			continue
		}
		kept = append(kept, b)
	}
	r.s.batches = kept
	return nil
}

type memStockRepo struct{ s *memStore }

func (r *memStockRepo) Get(propertyID, species, sex, bracket string) (*entity.Stock, error) {
	if row, ok := r.s.stocks[stockKey(propertyID, species, sex, bracket)]; ok {
		c := *row
		return &c, nil
	}
	return &entity.Stock{PropertyID: propertyID, Species: species, Sex: sex, Bracket: bracket}, nil
}

func (r *memStockRepo) GetForUpdate(propertyID, species, sex, bracket string) (*entity.Stock, error) {
	return r.Get(propertyID, species, sex, bracket)
}

func (r *memStockRepo) Upsert(stock *entity.Stock) error {
	c := *stock
	r.s.stocks[stockKey(stock.PropertyID, stock.Species, stock.Sex, stock.Bracket)] = &c
	return nil
}

func (r *memStockRepo) List(propertyID, species string) ([]*entity.Stock, error) {
	var out []*entity.Stock
	for _, row := range r.s.stocks {
		if row.PropertyID == propertyID && row.Species == species {
			c := *row
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Sex != out[j].Sex {
			return out[i].Sex < out[j].Sex
		}
		return out[i].Bracket < out[j].Bracket
	})
	return out, nil
}

func (r *memStockRepo) DeleteByProperty(propertyID string, species []string) error {
	for key, row := range r.s.stocks {
		if row.PropertyID == propertyID && contains(species, row.Species) {
			delete(r.s.stocks, key)
		}
	}
	return nil
}

type memMovementRepo struct{ s *memStore }

func (r *memMovementRepo) Create(movement *entity.Movement) error {
	m := *movement
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	r.s.movements = append(r.s.movements, &m)
	return nil
}

func (r *memMovementRepo) ListByProperty(propertyID string, species []string) ([]*entity.Movement, error) {
	var out []*entity.Movement
	for _, m := range r.s.movements {
		if m.PropertyID == propertyID && contains(species, m.Species) {
			c := *m
			out = append(out, &c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

type memPropertyRepo struct{ s *memStore }

func (r *memPropertyRepo) GetByID(id string) (*entity.Property, error) {
	if p, ok := r.s.properties[id]; ok {
		c := *p
		return &c, nil
	}
	return nil, nil
}

func (r *memPropertyRepo) ListIDs() ([]string, error) {
	var ids []string
	for id := range r.s.properties {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

func (r *memPropertyRepo) UpdateCattleCount(id string, total int64) error {
	p, ok := r.s.properties[id]
	if !ok {
		p = &entity.Property{ID: id}
		r.s.properties[id] = p
	}
	p.CattleCount = total
	p.UpdatedAt = time.Now()
	return nil
}

type memTxRunner struct{ s *memStore }

func (r *memTxRunner) Run(ctx context.Context, propertyID string, fn func(
	batchRepo repository.BatchRepository,
	stockRepo repository.StockRepository,
	movRepo repository.MovementRepository,
	propertyRepo repository.PropertyRepository,
) error) error {
	return fn(&memBatchRepo{r.s}, &memStockRepo{r.s}, &memMovementRepo{r.s}, &memPropertyRepo{r.s})
}

func contains(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}
