package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"path/filepath"
	"sort"

	"github.com/jwang467-hub/IJC445-coursework/config"
	"github.com/jwang467-hub/IJC445-coursework/pkg/corpus"
	"github.com/jwang467-hub/IJC445-coursework/pkg/db"
	"github.com/jwang467-hub/IJC445-coursework/pkg/export"
	"github.com/jwang467-hub/IJC445-coursework/pkg/features"
	"github.com/jwang467-hub/IJC445-coursework/pkg/lexicon"
	"github.com/jwang467-hub/IJC445-coursework/pkg/pipeline"
	"github.com/jwang467-hub/IJC445-coursework/pkg/viz"

	_ "github.com/mattn/go-sqlite3"
)

func main() {
	cfg := config.Load()

	inputFlag := flag.String("input", cfg.InputPath, "Path to the Billboard lyrics CSV")
	outFlag := flag.String("out", cfg.OutputDir, "Directory for exported CSV tables")
	chartFlag := flag.String("charts", cfg.ChartDir, "Directory for rendered PNG charts")
	dbFlag := flag.String("db", cfg.SQLitePath, "Optional SQLite database for the feature table")
	posFlag := flag.String("positive-lexicon", cfg.PositiveLexiconPath, "Optional positive word list (overrides embedded lexicon)")
	negFlag := flag.String("negative-lexicon", cfg.NegativeLexiconPath, "Optional negative word list (overrides embedded lexicon)")
	flag.Parse()

	// Lexicon: embedded by default, external word lists when both are given.
	var lex lexicon.Lexicon
	if *posFlag != "" && *negFlag != "" {
		var err error
		lex, err = lexicon.LoadFiles(*posFlag, *negFlag)
		if err != nil {
			log.Fatalf("Failed to load lexicon: %v", err)
		}
		log.Printf("Loaded external lexicon (%d words)", len(lex))
	} else {
		lex = lexicon.Default()
	}

	songs, err := corpus.LoadFile(*inputFlag)
	if err != nil {
		log.Fatalf("Failed to load corpus: %v", err)
	}
	log.Printf("Loaded %d songs from %s", len(songs), *inputFlag)

	p := pipeline.New(lex)
	p.Logger = log.Default()
	res := p.Run(songs)
	log.Printf("Feature table: %d rows (%d songs dropped with zero tokens)", len(res.Features), res.Dropped)

	trend := features.Trend(res.Features)

	proj, pcaErr := features.PCA(res.Features)
	if pcaErr != nil {
		log.Printf("Warning: skipping PCA outputs: %v", pcaErr)
	}

	// CSV exports.
	if err := export.WriteFeatures(filepath.Join(*outFlag, "features.csv"), res.Features); err != nil {
		log.Fatalf("Failed to export features: %v", err)
	}
	if err := export.WriteTrend(filepath.Join(*outFlag, "trend.csv"), trend); err != nil {
		log.Fatalf("Failed to export trend: %v", err)
	}
	if pcaErr == nil {
		if err := export.WritePCA(filepath.Join(*outFlag, "pca.csv"), proj); err != nil {
			log.Fatalf("Failed to export pca: %v", err)
		}
	}
	log.Printf("Tables written to %s", *outFlag)

	// Optional SQLite export.
	if *dbFlag != "" {
		conn, err := sql.Open("sqlite3", *dbFlag)
		if err != nil {
			log.Fatalf("Failed to open database: %v", err)
		}
		defer conn.Close()
		if err := db.InitDB(conn); err != nil {
			log.Fatalf("Failed to initialize database: %v", err)
		}
		if err := db.SaveFeatures(conn, res.Features); err != nil {
			log.Fatalf("Failed to save features: %v", err)
		}
		n, err := db.CountFeatures(conn)
		if err != nil {
			log.Fatalf("Failed to count features: %v", err)
		}
		log.Printf("Feature table saved to %s (%d rows)", *dbFlag, n)
	}

	// Charts. Only the PCA chart depends on the projection.
	if pcaErr == nil {
		if err := viz.RenderAll(*chartFlag, res.Features, trend, proj); err != nil {
			log.Fatalf("Failed to render charts: %v", err)
		}
	} else {
		if err := viz.RenderCharts(*chartFlag, res.Features, trend); err != nil {
			log.Fatalf("Failed to render charts: %v", err)
		}
	}
	log.Printf("Charts written to %s", *chartFlag)

	printSummary(res.Features)
}

// printSummary logs a per-decade digest of the finished table.
func printSummary(feats []features.SongFeature) {
	type bucket struct {
		songs     int
		sentiment int
		words     int
	}
	buckets := make(map[corpus.Decade]*bucket)
	for _, f := range feats {
		b := buckets[f.Decade]
		if b == nil {
			b = &bucket{}
			buckets[f.Decade] = b
		}
		b.songs++
		b.sentiment += f.SentimentScore
		b.words += f.WordCount
	}

	decades := make([]corpus.Decade, 0, len(buckets))
	for d := range buckets {
		decades = append(decades, d)
	}
	sort.Slice(decades, func(i, j int) bool { return decades[i] < decades[j] })

	fmt.Println("decade   songs   mean sentiment   mean words")
	for _, d := range decades {
		b := buckets[d]
		fmt.Printf("%-8s %5d %16.2f %12.1f\n",
			d, b.songs,
			float64(b.sentiment)/float64(b.songs),
			float64(b.words)/float64(b.songs))
	}
}
