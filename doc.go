// Package traceix provides a Go SDK for the Traceix file-analysis service.
//
// The client uploads files (or hashes) to the Traceix REST API and passes the
// server's JSON replies through unchanged as Result values. Transport and
// decode failures are collapsed into a nil Result by design; only input
// validation and filesystem errors are returned to the caller, and always
// before any network activity.
//
// # Quick Start
//
//	client, err := traceix.NewClient("") // key from TRACEIX_API_KEY
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	result, err := client.AIPrediction(ctx, "/path/to/sample.bin")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if result == nil {
//	    log.Fatal("no response from the Traceix service")
//	}
//	fmt.Println(result)
//
// Set TRACEIX_DISABLE_TELEMETRY=1 to omit platform details from the
// User-Agent sent with each request.
package traceix
