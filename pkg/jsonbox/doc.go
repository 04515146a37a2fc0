// Package jsonbox provides types, interfaces, and helpers for working with a
// jsonbox document store.
//
// # Overview
//
// A box is a collection of JSON documents addressed by an opaque box id. The
// package defines the typed Client interface, the Record and Meta types a
// response is split into, the immutable Query used for listings, and the
// error taxonomy. A concrete client is built by the boxclient package.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/kuy/jsonbox-go/pkg/boxclient"
//	)
//
//	type Greeting struct {
//	  Name    string `json:"name"`
//	  Message string `json:"message"`
//	}
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := boxclient.NewWithBox[Greeting]("kuy_ed82aef3f93176996146")
//	  if err != nil { log.Fatal(err) }
//
//	  rec, err := cli.Create(ctx, Greeting{Name: "kuy", Message: "hello"})
//	  if err != nil { log.Fatal(err) }
//	  log.Println(rec.Meta.ID, rec.Meta.CreatedOn)
//	}
//
// # Queries
//
// Listings are ordered, paginated and filtered with Query, or through the
// QueryBuilder returned by Client.Read:
//
//	recs, err := cli.Read().
//	  OrderBy("count").Desc().
//	  Skip(8).Limit(42).
//	  Filter("count:>{}", 20).And("count:<{}", 40).
//	  Run(ctx)
//
// which requests sort=-count&skip=8&limit=42&q=count:>20,count:<40.
// OrderBy always selects ascending order; chain Desc after it to reverse.
//
// # Errors
//
// Every failure is one of *NetworkError (transport), *DecodeError (JSON
// codec, with a Reason) or *GeneralError (non-2xx status with the service's
// message). IsNetwork, IsDecode, IsGeneral and StatusCode help branching.
package jsonbox
