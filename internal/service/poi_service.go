package service

import (
	"context"
	"errors"
	"net"

	"github.com/kwarula/discover-diani-explorer-sub001/internal/models"
	"github.com/kwarula/discover-diani-explorer-sub001/internal/relevance"
	"github.com/kwarula/discover-diani-explorer-sub001/internal/repository"
	"github.com/kwarula/discover-diani-explorer-sub001/internal/store"
)

// POIService expone las dos vías de consulta de POIs, mutuamente
// excluyentes: filtros simples contra el store, o el procedimiento de
// relevancia "ahora mismo" resuelto en el nodo remoto. Si la vía de
// relevancia falla, el error se devuelve explícito; nunca se degrada en
// silencio a la vía de filtros porque las semánticas de matching son
// distintas.
type POIService struct {
	pois     *repository.POIRepository
	nodeAddr string
	retry    store.RetryPolicy
}

func NewPOIService(pois *repository.POIRepository, nodeAddr string) *POIService {
	return &POIService{
		pois:     pois,
		nodeAddr: nodeAddr,
		retry:    store.DefaultRetryPolicy(),
	}
}

func (s *POIService) Query(ctx context.Context, q repository.POIQuery) ([]models.PointOfInterest, error) {
	return s.pois.Query(ctx, q)
}

func (s *POIService) GetByID(ctx context.Context, id string) (*models.PointOfInterest, error) {
	return s.pois.GetByID(ctx, id)
}

// RelevantNow delega el matching completo (ventana horaria + tags) al nodo
// de relevancia. El orden de resultados es el que devuelva el nodo.
func (s *POIService) RelevantNow(ctx context.Context, timeInput string, requiredTags []string) ([]models.PointOfInterest, error) {
	if _, err := relevance.ParseClock(timeInput); err != nil {
		return nil, &models.ValidationError{Msg: "invalid current_time_input, want HH:MM:SS"}
	}

	task := &relevance.Task{
		CurrentTimeInput: timeInput,
		RequiredTags:     requiredTags,
	}

	var pois []models.PointOfInterest
	err := s.retry.Do(ctx, func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, store.DefaultTimeout)
		defer cancel()

		resp, err := relevance.SendTask(ctx, s.nodeAddr, task)
		if err != nil {
			return classifyNodeError(err)
		}
		if resp.Error != "" {
			return &models.StoreError{Op: "relevance", Collection: "pois", Err: errors.New(resp.Error)}
		}
		pois = resp.POIs
		return nil
	})
	if err != nil {
		return nil, err
	}
	if pois == nil {
		pois = []models.PointOfInterest{}
	}
	return pois, nil
}

func classifyNodeError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return models.ErrTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return models.ErrTimeout
	}
	return &models.NetworkError{Op: "relevance call", Err: err}
}
