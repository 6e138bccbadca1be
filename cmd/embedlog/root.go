package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/embedlog/embedlog/core"
	"github.com/embedlog/embedlog/logger"
	"github.com/embedlog/embedlog/sink"
	"github.com/embedlog/embedlog/sink/consolesink"
	"github.com/embedlog/embedlog/sink/filesink"
)

var (
	flagFile       string
	flagLevel      string
	flagCapacity   int
	flagEcho       bool
	flagNoAuto     bool
	flagDropOldest bool
	flagTimestamps bool
	flagMaxSize    int64
	flagMaxBackups int

	rootCmd = &cobra.Command{
		Use:   "embedlog",
		Short: "embedlog relays stdin through a buffered logging engine",
		Long: `embedlog reads lines from standard input, stages them through a
buffered logging engine and delivers them to a console or rotating file
sink. A line may carry a leading severity token ("E: disk failure");
untagged lines are staged at info.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd)
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagFile, "file", "f", "", "deliver to a rotating log file instead of stdout")
	rootCmd.PersistentFlags().StringVarP(&flagLevel, "level", "l", "debug", "ceiling level (off, critical, error, warning, info, debug)")
	rootCmd.PersistentFlags().IntVarP(&flagCapacity, "capacity", "c", core.DefaultCapacity, "staging buffer capacity in bytes")
	rootCmd.PersistentFlags().BoolVarP(&flagEcho, "echo", "e", false, "mirror admitted records to stderr as they are staged")
	rootCmd.PersistentFlags().BoolVar(&flagNoAuto, "no-auto-flush", false, "drop on a full buffer instead of flushing")
	rootCmd.PersistentFlags().BoolVar(&flagDropOldest, "drop-oldest", false, "with --no-auto-flush, evict oldest staged bytes instead of dropping new ones")
	rootCmd.PersistentFlags().BoolVarP(&flagTimestamps, "timestamps", "t", false, "prefix each record with elapsed milliseconds")
	rootCmd.PersistentFlags().Int64Var(&flagMaxSize, "max-size", 0, "rotate the log file after this many bytes (0 disables rotation)")
	rootCmd.PersistentFlags().IntVar(&flagMaxBackups, "max-backups", 5, "rotated files to keep")
}

func run(cmd *cobra.Command) error {
	var (
		dest   sink.Sink
		closer func() error
	)
	if flagFile != "" {
		fs, err := filesink.New(filesink.Config{
			Filename:   flagFile,
			MaxSize:    flagMaxSize,
			MaxBackups: flagMaxBackups,
		})
		if err != nil {
			return err
		}
		dest = fs
		closer = fs.Close
	} else {
		dest = consolesink.New(consolesink.Config{Writer: cmd.OutOrStdout()})
	}

	policy := logger.DropNewest
	if flagDropOldest {
		policy = logger.DropOldest
	}

	cfg := logger.Config{
		Level:       core.ParseLevel(flagLevel),
		Capacity:    flagCapacity,
		Echo:        flagEcho,
		EchoWriter:  cmd.ErrOrStderr(),
		NoAutoFlush: flagNoAuto,
		Policy:      policy,
	}
	if flagTimestamps {
		start := time.Now()
		cfg.Prefix = func() string {
			return fmt.Sprintf("[%d ms] ", time.Since(start).Milliseconds())
		}
	}

	log, err := logger.New(dest, cfg)
	if err != nil {
		return err
	}

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		level, text := splitLine(scanner.Text())
		log.Log(level, "%s\n", text)
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	if err := log.Flush(); err != nil {
		return err
	}
	if closer != nil {
		return closer()
	}
	return nil
}

// splitLine peels an optional leading severity token ("E: message",
// "warning: message") off an input line. Untagged lines stage at info.
func splitLine(line string) (core.Level, string) {
	tok, rest, ok := strings.Cut(line, ":")
	if !ok {
		return core.Info, line
	}
	switch strings.ToLower(strings.TrimSpace(tok)) {
	case "c", "critical", "crit":
		return core.Critical, strings.TrimLeft(rest, " ")
	case "e", "error", "err":
		return core.Error, strings.TrimLeft(rest, " ")
	case "w", "warning", "warn":
		return core.Warning, strings.TrimLeft(rest, " ")
	case "i", "info":
		return core.Info, strings.TrimLeft(rest, " ")
	case "d", "debug":
		return core.Debug, strings.TrimLeft(rest, " ")
	default:
		return core.Info, line
	}
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
