package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path"
	"strings"

	"advocacia_elite/config"
	"advocacia_elite/services"

	"github.com/spf13/pflag"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("sync-media: %v", err)
	}
}

func run() error {
	cfg := config.Load()

	var dir, prefix string
	var dryRun bool

	flagSet := pflag.NewFlagSet("sync-media", pflag.ContinueOnError)
	flagSet.StringVar(&dir, "dir", cfg.MediaDir, "local media directory to upload")
	flagSet.StringVar(&prefix, "prefix", "", "key prefix inside the bucket")
	flagSet.BoolVar(&dryRun, "dry-run", false, "list what would be uploaded without uploading")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			printHelp(flagSet)
			return nil
		}
		return err
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)
		return nil
	}
	if args := flagSet.Args(); len(args) > 0 {
		return fmt.Errorf("unexpected argument: %s", args[0])
	}

	var dst services.MediaProvider
	if !dryRun {
		if !cfg.R2Configured() {
			return fmt.Errorf("R2 is not configured; set R2_ACCOUNT_ID, R2_ACCESS_KEY_ID, R2_SECRET_ACCESS_KEY and R2_BUCKET_NAME")
		}
		r2, err := services.NewR2Media(cfg)
		if err != nil {
			return err
		}
		dst = r2
	}

	log.Printf("Syncing media from %s", dir)
	n, err := syncMedia(context.Background(), services.NewLocalMedia(dir), dst, prefix)
	if err != nil {
		return err
	}
	log.Printf("Media sync completed: %d files", n)
	return nil
}

// syncMedia uploads every file of src to dst under prefix. A nil dst only
// lists the files.
func syncMedia(ctx context.Context, src *services.LocalMedia, dst services.MediaProvider, prefix string) (int, error) {
	count := 0
	err := src.Walk(func(key, filePath string, size int64) error {
		if strings.HasPrefix(path.Base(key), ".") {
			return nil
		}
		target := path.Join(prefix, key)
		count++

		if dst == nil {
			log.Printf("[DRY RUN] %s (%d bytes)", target, size)
			return nil
		}

		f, err := os.Open(filePath)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", filePath, err)
		}
		defer f.Close()

		result, err := dst.UploadReader(ctx, f, target, services.ContentTypeFor(key), size)
		if err != nil {
			return fmt.Errorf("failed to upload %s: %w", target, err)
		}
		log.Printf("[%d] Uploaded %s to %s", count, target, result.URL)
		return nil
	})
	return count, err
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `sync-media uploads the local media directory to the R2 bucket so the
site can serve content images from the bucket's public URL.

Usage:
  sync-media [flags]

Flags:
`)
	flagSet.PrintDefaults()
}
