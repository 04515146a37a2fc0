// Package boxclient constructs clients that implement jsonbox.Client.
//
// It normalizes the endpoint in a jsonbox.Config and wires the HTTP
// transport and optional logger before handing back a typed client. Most
// applications import boxclient to build a client and use the jsonbox
// package for everything else.
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//	  "time"
//
//	  "github.com/kuy/jsonbox-go/pkg/boxclient"
//	  "github.com/kuy/jsonbox-go/pkg/jsonbox"
//	)
//
//	type Data struct {
//	  Name  string `json:"name"`
//	  Count int    `json:"count"`
//	}
//
//	func example() {
//	  ctx := context.Background()
//
//	  // Public service, defaults everywhere.
//	  cli, err := boxclient.NewWithBox[Data]("kuy_ed82aef3f93176996146")
//	  if err != nil { log.Fatal(err) }
//
//	  // Self-hosted service. "localhost:3000/" becomes "https://localhost:3000".
//	  cli, err = boxclient.New[Data](&jsonbox.Config{
//	    BoxID:       "kuy_ed82aef3f93176996146",
//	    BaseURL:     "http://localhost:3000",
//	    HTTPTimeout: 5 * time.Second,
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  recs, err := cli.Read().OrderBy("count").Desc().Limit(5).Run(ctx)
//	  if err != nil { log.Fatal(err) }
//	  _ = recs
//	}
//
// # Helpers
//
// NewWithBox and NewWithEndpoint wrap New with the matching configuration.
package boxclient
