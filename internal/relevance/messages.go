package relevance

import "github.com/kwarula/discover-diani-explorer-sub001/internal/models"

// Tarea enviada desde la API al nodo de relevancia: "¿qué POIs son
// relevantes en este momento?". El matching (ventana horaria + tags) se
// evalúa completo en el nodo, la API no re-filtra ni re-ordena.
type Task struct {
	CurrentTimeInput string   `json:"current_time_input"` // "HH:MM:SS"
	RequiredTags     []string `json:"required_tags"`      // nil = sin restricción de tags
}

// Respuesta del nodo a la API. El orden de POIs es el que decidió el nodo.
type Response struct {
	POIs  []models.PointOfInterest `json:"pois"`
	Error string                   `json:"error,omitempty"`
}
