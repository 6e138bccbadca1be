package logger_test

import (
	"fmt"

	"github.com/embedlog/embedlog/core"
	"github.com/embedlog/embedlog/logger"
	"github.com/embedlog/embedlog/sink"
)

func Example() {
	mem := &sink.MemSink{}
	log, err := logger.New(mem, logger.Config{})
	if err != nil {
		panic(err)
	}

	log.Info("boot complete\n")
	log.Debug("sensors: %d online\n", 4)

	if err := log.Flush(); err != nil {
		panic(err)
	}
	fmt.Print(mem.String())
	// Output:
	// <I> boot complete
	// <D> sensors: 4 online
}

func Example_saveAndRestore() {
	mem := &sink.MemSink{}
	log, _ := logger.New(mem, logger.Config{})

	// Temporarily disable auto-flush around a burst of logging, then
	// restore whatever was configured before.
	setting := log.SetAutoFlush(false)
	log.Warning("burst begins\n")
	log.SetAutoFlush(setting)

	fmt.Println(log.AutoFlush())
	// Output: true
}

func ExampleLogger_SetLevel() {
	mem := &sink.MemSink{}
	log, _ := logger.New(mem, logger.Config{})

	log.SetLevel(core.Warning)
	log.Debug("dropped\n")
	log.Error("kept\n")

	log.Flush()
	fmt.Print(mem.String())
	// Output: <E> kept
}
