// watchaccess connects to the access stream, prints every decision and
// sends each line typed on stdin as a navigate frame.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"net/url"
	"os"
	"os/signal"
	"strings"

	"github.com/gorilla/websocket"
)

type frame struct {
	Type  string `json:"type"`
	Token string `json:"token,omitempty"`
	Path  string `json:"path,omitempty"`
}

func main() {
	host := flag.String("host", "localhost:8080", "server address")
	path := flag.String("path", "/dashboard", "initial page")
	token := flag.String("token", os.Getenv("SOLARI_TOKEN"), "bearer token, empty for signed out")
	flag.Parse()

	u := url.URL{Scheme: "ws", Host: *host, Path: "/api/v1/access/stream"}
	q := u.Query()
	q.Set("path", *path)
	u.RawQuery = q.Encode()

	fmt.Printf("connecting to %s\n", u.String())

	c, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
	if err != nil {
		log.Fatal("dial:", err)
	}
	defer c.Close() //nolint:errcheck

	if *token != "" {
		if err := c.WriteJSON(frame{Type: "identity", Token: *token}); err != nil {
			log.Fatal("identity:", err)
		}
	}

	done := make(chan struct{})

	go func() {
		defer close(done)
		for {
			_, message, err := c.ReadMessage()
			if err != nil {
				log.Println("read:", err)
				return
			}
			fmt.Printf("<- %s\n", message)
		}
	}()

	go func() {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())

			var f frame
			switch line {
			case "":
				continue
			case "signout":
				f = frame{Type: "sign_out"}
			default:
				f = frame{Type: "navigate", Path: line}
			}

			if err := c.WriteJSON(f); err != nil {
				log.Println("write:", err)
				return
			}
		}
	}()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)

	select {
	case <-done:
	case <-interrupt:
		c.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")) //nolint:errcheck
	}
}
