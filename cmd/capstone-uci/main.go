package main

import (
	"flag"
	"log"
	"os"
	"runtime/pprof"

	"github.com/Daemonerne/capstoneChess-sub001/internal/engine"
	"github.com/Daemonerne/capstoneChess-sub001/internal/storage"
	"github.com/Daemonerne/capstoneChess-sub001/internal/uci"
)

var (
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
	dbDir      = flag.String("db", "", "database directory (default: platform data dir)")
)

func main() {
	flag.Parse()

	// Start CPU profiling if requested (via flag or environment variable)
	profilePath := *cpuprofile
	if profilePath == "" {
		profilePath = os.Getenv("CPUPROFILE")
	}
	if profilePath != "" {
		f, err := os.Create(profilePath)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
		log.Printf("CPU profiling enabled, writing to %s", profilePath)
	}

	// The engine runs without a database when none can be opened;
	// preferences then live in memory for the session.
	store := openStorage(*dbDir)
	if store != nil {
		defer store.Close()
	}

	prefs := loadPreferences(store)

	eng := engine.NewEngine(uci.EvaluatorFor(prefs.Evaluator), prefs.TableSizeMB)

	protocol := uci.New(eng, store, prefs)
	protocol.Run()
}

func openStorage(dir string) *storage.Storage {
	var (
		store *storage.Storage
		err   error
	)
	if dir != "" {
		store, err = storage.NewStorageAt(dir)
	} else {
		store, err = storage.NewStorage()
	}
	if err != nil {
		log.Printf("Warning: storage unavailable: %v", err)
		return nil
	}
	return store
}

func loadPreferences(store *storage.Storage) *storage.EnginePreferences {
	if store == nil {
		return storage.DefaultPreferences()
	}

	first, err := store.IsFirstLaunch()
	if err != nil {
		log.Printf("Warning: first launch check failed: %v", err)
	}
	if first {
		prefs := storage.DefaultPreferences()
		if err := store.SavePreferences(prefs); err != nil {
			log.Printf("Warning: could not save default preferences: %v", err)
		}
		if err := store.MarkFirstLaunchComplete(); err != nil {
			log.Printf("Warning: could not mark first launch: %v", err)
		}
		return prefs
	}

	prefs, err := store.LoadPreferences()
	if err != nil {
		log.Printf("Warning: could not load preferences: %v", err)
		return storage.DefaultPreferences()
	}
	return prefs
}
