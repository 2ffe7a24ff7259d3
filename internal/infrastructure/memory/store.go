// Package memory implementa los puertos de persistencia en memoria.
// Se usa en tests y para ejecutar casos de uso sin PostgreSQL.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/storefront-backend/internal/application/inventory"
	"github.com/jhoicas/storefront-backend/internal/domain"
	"github.com/jhoicas/storefront-backend/internal/domain/entity"
	"github.com/jhoicas/storefront-backend/internal/domain/repository"
)

var (
	_ repository.StockLocationRepository  = (*Store)(nil)
	_ repository.InventoryItemRepository  = (*ItemRepo)(nil)
	_ repository.InventoryLevelRepository = (*LevelRepo)(nil)
	_ repository.SalesChannelRepository   = (*ChannelRepo)(nil)
	_ repository.LinkRepository           = (*LinkRepo)(nil)
	_ inventory.TxRunner                  = (*Store)(nil)
)

type levelKey struct{ itemID, locationID string }

// Store guarda todas las entidades bajo un mismo mutex.
// Store implementa StockLocationRepository; el resto de puertos se obtienen con Items(), Levels(), etc.
type Store struct {
	mu            sync.Mutex
	seq           int64
	locations     map[string]*entity.StockLocation
	locationOrder map[string]int64
	items         []*entity.InventoryItem
	levels        map[levelKey]*entity.InventoryLevel
	channels      []*entity.SalesChannel
	fulfillment   map[[2]string]*entity.FulfillmentLink
	channelLinks  map[[2]string]*entity.SalesChannelLink
}

// NewStore crea un store vacío.
func NewStore() *Store {
	return &Store{
		locations:     make(map[string]*entity.StockLocation),
		locationOrder: make(map[string]int64),
		levels:        make(map[levelKey]*entity.InventoryLevel),
		fulfillment:   make(map[[2]string]*entity.FulfillmentLink),
		channelLinks:  make(map[[2]string]*entity.SalesChannelLink),
	}
}

// Items repositorio de items de inventario.
func (s *Store) Items() *ItemRepo { return &ItemRepo{s: s} }

// Levels repositorio de niveles de inventario.
func (s *Store) Levels() *LevelRepo { return &LevelRepo{s: s} }

// Channels repositorio de canales de venta.
func (s *Store) Channels() *ChannelRepo { return &ChannelRepo{s: s} }

// Links repositorio de vínculos.
func (s *Store) Links() *LinkRepo { return &LinkRepo{s: s} }

// Run ejecuta fn con snapshot: si fn falla se restaura el estado previo.
func (s *Store) Run(ctx context.Context, fn func(
	locationRepo repository.StockLocationRepository,
	levelRepo repository.InventoryLevelRepository,
	linkRepo repository.LinkRepository,
) error) error {
	snap := s.snapshot()
	if err := fn(s, s.Levels(), s.Links()); err != nil {
		s.restore(snap)
		return err
	}
	return nil
}

// AddItem registra un item de catálogo. Si id es vacío se genera.
func (s *Store) AddItem(id, sku string) *entity.InventoryItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id == "" {
		id = uuid.New().String()
	}
	item := &entity.InventoryItem{ID: id, SKU: sku}
	s.items = append(s.items, item)
	return item
}

// AddSalesChannel registra un canal de venta.
func (s *Store) AddSalesChannel(id, name string) *entity.SalesChannel {
	s.mu.Lock()
	defer s.mu.Unlock()
	ch := &entity.SalesChannel{ID: id, Name: name}
	s.channels = append(s.channels, ch)
	return ch
}

// PutLevel inserta o reemplaza un nivel, sin validaciones.
func (s *Store) PutLevel(itemID, locationID string, qty decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	s.levels[levelKey{itemID, locationID}] = &entity.InventoryLevel{
		ID:              uuid.New().String(),
		InventoryItemID: itemID,
		LocationID:      locationID,
		StockedQuantity: qty,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// Create implementa StockLocationRepository.
func (s *Store) Create(_ context.Context, location *entity.StockLocation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.locations[location.ID]; ok {
		return domain.ErrDuplicate
	}
	cp := *location
	s.locations[location.ID] = &cp
	s.seq++
	s.locationOrder[location.ID] = s.seq
	return nil
}

// GetByID implementa StockLocationRepository. Devuelve nil, nil si no existe.
func (s *Store) GetByID(_ context.Context, id string) (*entity.StockLocation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locations[id]
	if !ok {
		return nil, nil
	}
	cp := *l
	return &cp, nil
}

// List implementa StockLocationRepository (orden de inserción).
func (s *Store) List(_ context.Context) ([]*entity.StockLocation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := make([]*entity.StockLocation, 0, len(s.locations))
	for _, l := range s.locations {
		cp := *l
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool {
		return s.locationOrder[list[i].ID] < s.locationOrder[list[j].ID]
	})
	return list, nil
}

// ItemRepo implementa InventoryItemRepository.
type ItemRepo struct{ s *Store }

func (r *ItemRepo) List(_ context.Context) ([]*entity.InventoryItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	list := make([]*entity.InventoryItem, 0, len(r.s.items))
	for _, it := range r.s.items {
		cp := *it
		list = append(list, &cp)
	}
	return list, nil
}

// LevelRepo implementa InventoryLevelRepository.
type LevelRepo struct{ s *Store }

// CreateMany es todo o nada: si un nivel está duplicado no se inserta ninguno.
func (r *LevelRepo) CreateMany(_ context.Context, levels []*entity.InventoryLevel) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	seen := make(map[levelKey]struct{}, len(levels))
	for _, l := range levels {
		k := levelKey{l.InventoryItemID, l.LocationID}
		if _, ok := r.s.levels[k]; ok {
			return domain.ErrDuplicate
		}
		if _, ok := seen[k]; ok {
			return domain.ErrDuplicate
		}
		seen[k] = struct{}{}
	}
	for _, l := range levels {
		if err := r.insert(l); err != nil {
			return err
		}
	}
	return nil
}

func (r *LevelRepo) insert(level *entity.InventoryLevel) error {
	k := levelKey{level.InventoryItemID, level.LocationID}
	if _, ok := r.s.levels[k]; ok {
		return domain.ErrDuplicate
	}
	cp := *level
	r.s.levels[k] = &cp
	return nil
}

// ListByLocation devuelve los niveles ordenados por item.
func (r *LevelRepo) ListByLocation(_ context.Context, locationID string) ([]*entity.InventoryLevel, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []*entity.InventoryLevel
	for k, l := range r.s.levels {
		if k.locationID == locationID {
			cp := *l
			list = append(list, &cp)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].InventoryItemID < list[j].InventoryItemID })
	return list, nil
}

func (r *LevelRepo) UpdateStockedQuantity(_ context.Context, inventoryItemID, locationID string, quantity decimal.Decimal) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	l, ok := r.s.levels[levelKey{inventoryItemID, locationID}]
	if !ok {
		return domain.ErrNotFound
	}
	l.StockedQuantity = quantity
	l.UpdatedAt = time.Now()
	return nil
}

// ChannelRepo implementa SalesChannelRepository.
type ChannelRepo struct{ s *Store }

func (r *ChannelRepo) ListByName(_ context.Context, name string) ([]*entity.SalesChannel, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []*entity.SalesChannel
	for _, ch := range r.s.channels {
		if ch.Name == name {
			cp := *ch
			list = append(list, &cp)
		}
	}
	return list, nil
}

// LinkRepo implementa LinkRepository.
type LinkRepo struct{ s *Store }

func (r *LinkRepo) CreateFulfillmentLink(_ context.Context, link *entity.FulfillmentLink) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	k := [2]string{link.StockLocationID, link.FulfillmentProviderID}
	if _, ok := r.s.fulfillment[k]; ok {
		return nil
	}
	cp := *link
	r.s.fulfillment[k] = &cp
	return nil
}

func (r *LinkRepo) ListFulfillmentLinks(_ context.Context, stockLocationID string) ([]*entity.FulfillmentLink, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []*entity.FulfillmentLink
	for k, l := range r.s.fulfillment {
		if k[0] == stockLocationID {
			cp := *l
			list = append(list, &cp)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].FulfillmentProviderID < list[j].FulfillmentProviderID })
	return list, nil
}

func (r *LinkRepo) AddSalesChannelLinks(_ context.Context, links []*entity.SalesChannelLink) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, l := range links {
		k := [2]string{l.StockLocationID, l.SalesChannelID}
		if _, ok := r.s.channelLinks[k]; ok {
			continue
		}
		cp := *l
		r.s.channelLinks[k] = &cp
	}
	return nil
}

func (r *LinkRepo) RemoveSalesChannelLinks(_ context.Context, stockLocationID string, salesChannelIDs []string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, id := range salesChannelIDs {
		delete(r.s.channelLinks, [2]string{stockLocationID, id})
	}
	return nil
}

func (r *LinkRepo) ListSalesChannelLinks(_ context.Context, stockLocationID string) ([]*entity.SalesChannelLink, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []*entity.SalesChannelLink
	for k, l := range r.s.channelLinks {
		if k[0] == stockLocationID {
			cp := *l
			list = append(list, &cp)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].SalesChannelID < list[j].SalesChannelID })
	return list, nil
}

type snapshot struct {
	seq           int64
	locations     map[string]entity.StockLocation
	locationOrder map[string]int64
	levels        map[levelKey]entity.InventoryLevel
	fulfillment   map[[2]string]entity.FulfillmentLink
	channelLinks  map[[2]string]entity.SalesChannelLink
}

func (s *Store) snapshot() snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := snapshot{
		seq:           s.seq,
		locations:     make(map[string]entity.StockLocation, len(s.locations)),
		locationOrder: make(map[string]int64, len(s.locationOrder)),
		levels:        make(map[levelKey]entity.InventoryLevel, len(s.levels)),
		fulfillment:   make(map[[2]string]entity.FulfillmentLink, len(s.fulfillment)),
		channelLinks:  make(map[[2]string]entity.SalesChannelLink, len(s.channelLinks)),
	}
	for k, v := range s.locations {
		snap.locations[k] = *v
	}
	for k, v := range s.locationOrder {
		snap.locationOrder[k] = v
	}
	for k, v := range s.levels {
		snap.levels[k] = *v
	}
	for k, v := range s.fulfillment {
		snap.fulfillment[k] = *v
	}
	for k, v := range s.channelLinks {
		snap.channelLinks[k] = *v
	}
	return snap
}

func (s *Store) restore(snap snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq = snap.seq
	s.locations = make(map[string]*entity.StockLocation, len(snap.locations))
	for k, v := range snap.locations {
		v := v
		s.locations[k] = &v
	}
	s.locationOrder = snap.locationOrder
	s.levels = make(map[levelKey]*entity.InventoryLevel, len(snap.levels))
	for k, v := range snap.levels {
		v := v
		s.levels[k] = &v
	}
	s.fulfillment = make(map[[2]string]*entity.FulfillmentLink, len(snap.fulfillment))
	for k, v := range snap.fulfillment {
		v := v
		s.fulfillment[k] = &v
	}
	s.channelLinks = make(map[[2]string]*entity.SalesChannelLink, len(snap.channelLinks))
	for k, v := range snap.channelLinks {
		v := v
		s.channelLinks[k] = &v
	}
}
