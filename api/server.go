package api

import (
	"encoding/json"
	"log"
	"net/http"
)

// Status is the live playback snapshot served to the client.
type Status struct {
	Scene     string `json:"scene"`
	RuntimeMs int64  `json:"runtimeMs"`
	Frames    uint64 `json:"frames"`
}

// A StatusSource reports the current playback status.
type StatusSource interface {
	Status() Status
}

type Api struct {
	source StatusSource
}

func NewApi(source StatusSource) *Api {
	a := new(Api)
	a.source = source
	return a
}

func (a *Api) handleStatus(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(a.source.Status())
}

func (a *Api) Serve() {
	fs := http.FileServer(http.Dir("client/dist"))
	http.Handle("/", fs)
	http.HandleFunc("/api/status", a.handleStatus)

	log.Println("Listening...")
	http.ListenAndServe(":3000", nil)
}
