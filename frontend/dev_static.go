package main

import (
	"log"
	"net/http"
)

// Tiny standalone server for iterating on the form page without running
// the backend: go run ./frontend from the repo root.
func main() {
	fs := http.FileServer(http.Dir("./frontend"))
	http.Handle("/", fs)
	log.Println("UI on http://localhost:8081")
	log.Fatal(http.ListenAndServe(":8081", nil))
}
