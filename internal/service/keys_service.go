package service

import (
	"fmt"

	"github.com/kwarula/discover-diani-explorer-sub001/internal/config"
	"github.com/kwarula/discover-diani-explorer-sub001/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

// Set cerrado de claves que el broker sabe entregar.
const (
	KeyTypeOpenWeather = "openweather"
	KeyTypeStormglass  = "stormglass"
	KeyTypeWorldTides  = "worldtides"
)

// KeysService es el broker de credenciales de terceros: los secretos viven
// solo en el entorno del servidor y se entregan únicamente contra una
// sesión válida. No hay cache: cada consumidor vuelve a pedir la suya.
type KeysService struct {
	jwtSecret []byte
	keys      map[string]string
}

func NewKeysService(cfg *config.Config) *KeysService {
	return &KeysService{
		jwtSecret: []byte(cfg.JWTSecret),
		keys: map[string]string{
			KeyTypeOpenWeather: cfg.OpenWeatherKey,
			KeyTypeStormglass:  cfg.StormglassKey,
			KeyTypeWorldTides:  cfg.WorldTidesKey,
		},
	}
}

// RequestKey valida la sesión ANTES de resolver nada: sin token válido se
// corta con ErrAuthRequired y no se hace ninguna otra llamada.
func (s *KeysService) RequestKey(sessionToken, keyType string) (string, error) {
	if sessionToken == "" {
		return "", models.ErrAuthRequired
	}

	token, err := jwt.Parse(sessionToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return "", models.ErrAuthRequired
	}

	key, ok := s.keys[keyType]
	if !ok {
		return "", &models.ValidationError{Msg: "unknown key type: " + keyType}
	}
	if key == "" {
		return "", fmt.Errorf("key %s is not configured", keyType)
	}
	return key, nil
}
