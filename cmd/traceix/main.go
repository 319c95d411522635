// Command traceix is a command line client for the Traceix file-analysis
// service, wrapping every SDK operation.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	traceix "github.com/perkinsfund/traceix-sdk-go"
	"go.uber.org/zap"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	app     = kingpin.New("traceix", "Command line client for the Traceix file-analysis service.")
	apiKey  = app.Flag("api-key", "Traceix API key. Falls back to TRACEIX_API_KEY.").String()
	baseURL = app.Flag("base-url", "Override the Traceix service base URL.").String()
	verbose = app.Flag("verbose", "Enable debug logging.").Short('v').Bool()

	predict     = app.Command("predict", "Upload a file for AI prediction.")
	predictFile = predict.Arg("file", "Path to the file.").Required().ExistingFile()

	status     = app.Command("status", "Check the processing status of an upload.")
	statusUUID = status.Arg("uuid", "Upload UUID.").Required().String()

	search     = app.Command("search", "Search analyzed files by SHA-256.")
	searchHash = search.Arg("sha256", "SHA-256 of the file.").Required().String()
	searchType = search.Flag("type", "Search type.").Default("capa").Enum("capa", "exif")

	capa     = app.Command("capa", "Extract capabilities from a file.")
	capaFile = capa.Arg("file", "Path to the file.").Required().ExistingFile()

	exif     = app.Command("exif", "Extract EXIF metadata from a file.")
	exifFile = exif.Arg("file", "Path to the file.").Required().ExistingFile()

	full     = app.Command("full", "Run prediction, capa and exif extraction in one go.")
	fullFile = full.Arg("file", "Path to the file.").Required().ExistingFile()

	ipfsList = app.Command("ipfs-list", "List all public IPFS datasets.")

	ipfsGet    = app.Command("ipfs-get", "Get a public IPFS dataset by CID.")
	ipfsGetCID = ipfsGet.Arg("cid", "Dataset CID.").Required().String()

	ipfsFind     = app.Command("ipfs-find", "Search public IPFS datasets by file hash.")
	ipfsFindHash = ipfsFind.Arg("hash", "Hash of the file.").Required().String()
)

func main() {
	cmd := kingpin.MustParse(app.Parse(os.Args[1:]))
	if err := run(cmd); err != nil {
		fmt.Fprintf(os.Stderr, "traceix: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd string) error {
	// Optional .env for local use; the environment wins when both are set.
	_ = godotenv.Load()

	log, err := newLogger(*verbose)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync() //nolint:errcheck

	opts := []traceix.ClientOption{traceix.WithLogger(log)}
	if *baseURL != "" {
		opts = append(opts, traceix.WithBaseURL(*baseURL))
	}

	client, err := traceix.NewClient(*apiKey, opts...)
	if err != nil {
		return err
	}
	defer client.Close()

	ctx := context.Background()

	switch cmd {
	case predict.FullCommand():
		return emit(client.AIPrediction(ctx, *predictFile))
	case status.FullCommand():
		return emit(client.CheckStatus(ctx, *statusUUID))
	case search.FullCommand():
		return emit(client.HashSearch(ctx, *searchHash, traceix.SearchType(*searchType)))
	case capa.FullCommand():
		return emit(client.CapaExtraction(ctx, *capaFile))
	case exif.FullCommand():
		return emit(client.ExifExtraction(ctx, *exifFile))
	case full.FullCommand():
		ai, capaRes, exifRes, err := client.FullUpload(ctx, *fullFile)
		if err != nil {
			return err
		}
		for _, res := range []traceix.Result{ai, capaRes, exifRes} {
			if err := emit(res, nil); err != nil {
				return err
			}
		}
		return nil
	case ipfsList.FullCommand():
		return emit(client.ListAllIPFSDatasets(ctx))
	case ipfsGet.FullCommand():
		return emit(client.GetPublicIPFSDataset(ctx, *ipfsGetCID))
	case ipfsFind.FullCommand():
		return emit(client.SearchIPFSDatasetByHash(ctx, *ipfsFindHash))
	}
	return nil
}

// emit pretty-prints a result to stdout, or fails when the service produced
// no usable response.
func emit(res traceix.Result, err error) error {
	if err != nil {
		return err
	}
	if res == nil {
		return fmt.Errorf("no response from the Traceix service")
	}

	var out bytes.Buffer
	if err := json.Indent(&out, res, "", "  "); err != nil {
		fmt.Println(res.String())
		return nil
	}
	fmt.Println(out.String())
	return nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return cfg.Build()
}
