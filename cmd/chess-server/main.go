// chess-server exposes the rules engine over HTTP and WebSocket:
// position analysis, legal move lists and move application.
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
)

const DefaultPort = 8080

func main() {
	var port uint
	flag.UintVar(&port, "port", DefaultPort, "Port to listen on")
	flag.Parse()
	if port == 0 || port > 65535 {
		fmt.Println("Invalid port number")
		os.Exit(1)
	}
	fmt.Printf("Starting server on :%d\n", port)
	app := NewApplication()
	if err := http.ListenAndServe(fmt.Sprintf(":%d", port), app); err != nil {
		fmt.Fprintf(os.Stderr, "chess-server: %v\n", err)
		os.Exit(1)
	}
}
