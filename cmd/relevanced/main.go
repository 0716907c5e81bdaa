package main

import (
	"bufio"
	"context"
	"encoding/json"
	"log"
	"net"
	"os"
	"time"

	"github.com/kwarula/discover-diani-explorer-sub001/internal/config"
	"github.com/kwarula/discover-diani-explorer-sub001/internal/db"
	"github.com/kwarula/discover-diani-explorer-sub001/internal/models"
	"github.com/kwarula/discover-diani-explorer-sub001/internal/relevance"
	"github.com/kwarula/discover-diani-explorer-sub001/internal/repository"
	"github.com/kwarula/discover-diani-explorer-sub001/internal/store"
)

// relevanced es el nodo del procedimiento de relevancia: recibe una hora
// del día y tags requeridos, evalúa la ventana de apertura y el matching
// de tags contra la colección de POIs, y devuelve los que aplican. La API
// nunca re-filtra este resultado.
func main() {
	cfg := config.Load()

	database, err := db.Connect(context.Background(), cfg)
	if err != nil {
		log.Fatalf("[mongo] error conectando: %v", err)
	}
	defer db.Disconnect(context.Background(), database)

	addr := os.Getenv("RELEVANCE_LISTEN_ADDR")
	if addr == "" {
		addr = ":9002"
	}

	log.Printf("[relevanced] escuchando en %s", addr)

	poiRepo := repository.NewPOIRepository(store.NewExecutor(database))

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatal(err)
	}

	for {
		conn, err := ln.Accept()
		if err != nil {
			log.Println("accept error:", err)
			continue
		}
		go handleConn(conn, poiRepo)
	}
}

func handleConn(conn net.Conn, pois *repository.POIRepository) {
	defer conn.Close()

	_ = conn.SetDeadline(time.Now().Add(30 * time.Second))

	dec := json.NewDecoder(bufio.NewReader(conn))
	var task relevance.Task
	if err := dec.Decode(&task); err != nil {
		log.Printf("[relevanced] decode task error: %v", err)
		return
	}

	log.Printf("[relevanced] tarea recibida: time=%s tags=%d",
		task.CurrentTimeInput, len(task.RequiredTags))

	start := time.Now()

	resp := resolve(context.Background(), task, pois)

	log.Printf("[relevanced] completado: matches=%d tiempo=%s",
		len(resp.POIs), time.Since(start))

	if err := json.NewEncoder(conn).Encode(resp); err != nil {
		log.Printf("[relevanced] encode resp error: %v", err)
	}
}

func resolve(ctx context.Context, task relevance.Task, pois *repository.POIRepository) *relevance.Response {
	now, err := relevance.ParseClock(task.CurrentTimeInput)
	if err != nil {
		return &relevance.Response{Error: err.Error()}
	}

	all, err := pois.All(ctx)
	if err != nil {
		return &relevance.Response{Error: err.Error()}
	}

	matched := []models.PointOfInterest{}
	for _, poi := range all {
		if relevance.Matches(poi, now, task.RequiredTags) {
			matched = append(matched, poi)
		}
	}

	return &relevance.Response{POIs: matched}
}
