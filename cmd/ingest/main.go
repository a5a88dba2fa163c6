package main

import (
	"context"
	"flag"
	"log"
	"strings"

	"github.com/fharvey/fileaccess-ms-go/internal/config"
	"github.com/fharvey/fileaccess-ms-go/internal/port"
	"github.com/fharvey/fileaccess-ms-go/internal/storage"
	fileSvc "github.com/fharvey/fileaccess-ms-go/internal/usecase/file"
	"github.com/fharvey/fileaccess-ms-go/internal/validation"
)

func main() {
	filePath := flag.String("file", "", "path to the local file to upload")
	owner := flag.String("owner", "", "owner id, used as the key namespace and metadata owner")
	allow := flag.String("allow", "", "comma-separated user ids granted download access")
	flag.Parse()

	if *filePath == "" || *owner == "" {
		flag.Usage()
		log.Fatal("❌  -file and -owner are required")
	}

	in := port.IngestInput{
		FilePath: *filePath,
		OwnerID:  *owner,
		Allowed:  splitAllowList(*allow),
	}
	if err := validation.ValidateStruct(in); err != nil {
		log.Fatalf("❌  Invalid input: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌  Configuration error: %v", err)
	}

	strg := initStorage(cfg)
	if err := strg.InitBucket(cfg.BucketName); err != nil {
		log.Fatalf("❌  Failed to initialize bucket %q: %v", cfg.BucketName, err)
	}

	ing := fileSvc.NewIngestor(strg, cfg.BucketName)
	out, err := ing.Ingest(context.Background(), in)
	if err != nil {
		log.Fatalf("❌  Ingestion failed: %v", err)
	}

	log.Printf("✅  Uploaded %q (%s, %d bytes, %d allowed users)",
		out.ObjectKey, out.ContentType, out.Metadata.SizeBytes, len(out.Metadata.Allowed))
}

func initStorage(cfg *config.Settings) port.Storage {
	strg, err := storage.NewStorage(
		cfg.S3Endpoint,
		cfg.AWSRegion,
		cfg.S3AccessKey,
		cfg.S3SecretKey,
		cfg.S3UseSSL,
	)
	if err != nil {
		log.Fatalf("❌  Failed to initialize object store client: %v", err)
	}
	return strg
}

func splitAllowList(raw string) []string {
	var allowed []string
	for _, id := range strings.Split(raw, ",") {
		if id = strings.TrimSpace(id); id != "" {
			allowed = append(allowed, id)
		}
	}
	return allowed
}
