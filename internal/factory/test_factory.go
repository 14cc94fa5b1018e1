package factory

import (
	"time"

	"github.com/mcoot/seabattle-go/internal/dependencies/mocks"
	"github.com/mcoot/seabattle-go/internal/model"
	"github.com/mcoot/seabattle-go/internal/storage"
	"github.com/mcoot/seabattle-go/internal/storage/memory"
	"github.com/mcoot/seabattle-go/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	return NewTestAppWithConfig(Config{})
}

// NewTestAppWithConfig is NewTestApp with a custom board, placement or strategy config
func NewTestAppWithConfig(cfg Config) *TestApp {
	return NewTestAppWithStorage(memory.New(), cfg)
}

// NewTestAppWithStorage is NewTestAppWithConfig on top of the given storage
func NewTestAppWithStorage(store storage.Storage, cfg Config) *TestApp {
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app := newWithDependencies(store, mockClock, mockRandom, cfg, testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}

// StandardLayout returns a legal placement of the standard fleet
func StandardLayout() []*model.Ship {
	return []*model.Ship{
		model.NewShip(3, model.Coordinate{Row: 0, Col: 0}, model.Horizontal),
		model.NewShip(2, model.Coordinate{Row: 0, Col: 5}, model.Vertical),
		model.NewShip(2, model.Coordinate{Row: 3, Col: 0}, model.Vertical),
		model.NewShip(1, model.Coordinate{Row: 3, Col: 2}, model.Vertical),
		model.NewShip(1, model.Coordinate{Row: 3, Col: 4}, model.Vertical),
		model.NewShip(1, model.Coordinate{Row: 5, Col: 2}, model.Vertical),
		model.NewShip(1, model.Coordinate{Row: 5, Col: 4}, model.Vertical),
	}
}

// StandardBoard builds a board holding StandardLayout
func (t *TestApp) StandardBoard() (*model.Board, error) {
	b := t.BoardService.NewBoard()
	for _, ship := range StandardLayout() {
		if err := t.BoardService.AddShip(b, ship); err != nil {
			return nil, err
		}
	}
	return b, nil
}
