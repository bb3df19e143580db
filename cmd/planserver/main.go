// Command planserver serves grid loading, zone ingestion and path planning
// over HTTP. State starts empty; load a grid with POST /grid before
// planning.
package main

import (
	"flag"
	"log"
	"net/http"
	"time"

	"github.com/katalvlaran/gridroute/server"
)

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	readTimeout := flag.Duration("read-timeout", 10*time.Second, "HTTP read timeout")
	writeTimeout := flag.Duration("write-timeout", 30*time.Second, "HTTP write timeout")
	flag.Parse()

	logger := log.New(log.Writer(), "planserver: ", log.LstdFlags)
	svc := server.NewService(logger)

	srv := &http.Server{
		Addr:         *addr,
		Handler:      svc.Handler(),
		ReadTimeout:  *readTimeout,
		WriteTimeout: *writeTimeout,
	}

	logger.Printf("listening on %s", *addr)
	if err := srv.ListenAndServe(); err != nil {
		logger.Fatal(err)
	}
}
