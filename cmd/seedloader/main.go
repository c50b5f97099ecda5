// Package main implements the offline content seed loader. It reads
// subject JSON files and writes topic, card and MCQ rows in the exact
// shapes the running service reads back. The service itself never
// writes content.
//
// Usage:
//
//	seedloader [-dir seed/] [file.json ...]
//
// With no file arguments every *.json file in -dir is loaded.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/SimonTheDeveloper/GCSE-AI-agent/internal/config"
	"github.com/SimonTheDeveloper/GCSE-AI-agent/internal/domain"
	"github.com/SimonTheDeveloper/GCSE-AI-agent/internal/platform/dynamo"
	"github.com/SimonTheDeveloper/GCSE-AI-agent/internal/platform/logger"
	"github.com/SimonTheDeveloper/GCSE-AI-agent/internal/store"
)

// subjectFile is the on-disk seed format: one subject with its topics,
// each topic carrying cards and optional pre-authored MCQs.
type subjectFile struct {
	Subject string      `json:"subject"`
	Topics  []topicSeed `json:"topics"`
}

type topicSeed struct {
	ID         string        `json:"id"`
	Title      string        `json:"title"`
	EstMinutes int           `json:"estMinutes"`
	Cards      []domain.Card `json:"cards"`
	MCQ        []domain.MCQ  `json:"mcq"`
}

func main() {
	dir := flag.String("dir", "seed", "directory holding subject JSON files")
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logg, err := logger.Setup(cfg.Server)
	if err != nil {
		log.Fatalf("Failed to set up logger: %v", err)
	}

	client, err := dynamo.NewClient(ctx, cfg.Dynamo)
	if err != nil {
		log.Fatalf("Failed to create store client: %v", err)
	}
	writer := dynamo.NewContentStore(dynamo.NewTable(client, cfg.Dynamo), logg)

	files := flag.Args()
	if len(files) == 0 {
		files, err = filepath.Glob(filepath.Join(*dir, "*.json"))
		if err != nil {
			log.Fatalf("Failed to list seed files: %v", err)
		}
		if len(files) == 0 {
			log.Fatalf("No seed files found in %s", *dir)
		}
	}

	for _, path := range files {
		if err := loadFile(ctx, writer, path); err != nil {
			log.Fatalf("Failed to load %s: %v", path, err)
		}
		logg.Info("seed file loaded", "file", path)
	}
}

// loadFile writes one subject file's rows. The topic's position in the
// file fixes its listing order within the subject.
func loadFile(ctx context.Context, writer store.ContentWriter, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var subject subjectFile
	if err := json.Unmarshal(data, &subject); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	if subject.Subject == "" {
		return fmt.Errorf("%s: missing subject name", path)
	}

	for ordinal, t := range subject.Topics {
		title := t.Title
		if title == "" {
			title = t.ID
		}
		est := t.EstMinutes
		if est == 0 {
			est = 10
		}

		topic := &domain.Topic{
			ID:         t.ID,
			Subject:    subject.Subject,
			Title:      title,
			EstMinutes: est,
		}
		if err := writer.PutTopic(ctx, topic, ordinal); err != nil {
			return fmt.Errorf("topic %s: %w", t.ID, err)
		}

		for i := range t.Cards {
			if err := writer.PutCard(ctx, t.ID, &t.Cards[i]); err != nil {
				return fmt.Errorf("topic %s card %s: %w", t.ID, t.Cards[i].ID, err)
			}
		}
		for i := range t.MCQ {
			if err := writer.PutMCQ(ctx, t.ID, &t.MCQ[i]); err != nil {
				return fmt.Errorf("topic %s mcq %s: %w", t.ID, t.MCQ[i].ID, err)
			}
		}
	}
	return nil
}
