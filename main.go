// Copyright
// SPDX-License-Identifier: MIT
// cppviz: terminal C++ editor shell with simulated run/visualize/debug, heuristic formatter and counters
package main

import (
    "errors"
    "fmt"
    "io"
    "os"
    "path/filepath"
    "strings"

    "github.com/atotto/clipboard"
    "github.com/dustin/go-humanize"
    "github.com/spf13/cobra"
    "go.uber.org/zap"

    "cppviz/internal/codetext"
    "cppviz/internal/config"
    "cppviz/internal/logging"
    "cppviz/internal/store"
    "cppviz/internal/tui"
)

const Version = "0.1.0"

var (
    configPath string
    storeFlag  string
    verbose    bool
)

/* ---------- CLI ---------- */

func main() {
    if err := newRootCmd().Execute(); err != nil {
        os.Exit(1)
    }
}

func newRootCmd() *cobra.Command {
    root := &cobra.Command{
        Use:   "cppviz [file]",
        Short: "Terminal C++ code visualizer shell",
        Long: `cppviz ` + Version + `
An editor for C++ source with line/char/object counters, a heuristic formatter,
a console and three views (structure, console, flow).
Run, visualize and debug are simulations: nothing is compiled or executed.`,
        Args:          cobra.MaximumNArgs(1),
        SilenceUsage:  true,
        RunE:          runEditor,
    }
    root.PersistentFlags().StringVar(&configPath, "config", config.DefaultFile, "config file")
    root.PersistentFlags().StringVar(&storeFlag, "store", "", "preference store backend: json | sqlite (overrides config)")
    root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug-level diagnostics log")

    root.AddCommand(
        newFormatCmd(),
        newStatsCmd(),
        newInitCmd(),
        newDoctorCmd(),
        &cobra.Command{
            Use:   "version",
            Short: "Print version",
            Run: func(cmd *cobra.Command, _ []string) {
                fmt.Fprintln(cmd.OutOrStdout(), "cppviz", Version)
            },
        },
    )
    return root
}

// loadSettings reads the config file and applies flag overrides.
func loadSettings() (*config.Settings, error) {
    cfg, err := config.Load(configPath)
    if err != nil {
        return nil, err
    }
    if storeFlag != "" {
        cfg.Store = storeFlag
    }
    if verbose {
        cfg.LogLevel = "debug"
    }
    return cfg, cfg.Validate()
}

/* ---------- commands ---------- */

func runEditor(cmd *cobra.Command, args []string) error {
    cfg, err := loadSettings()
    if err != nil {
        return err
    }
    logger, err := logging.New(cfg.LogPath(), cfg.LogLevel)
    if err != nil {
        return err
    }
    defer func() { _ = logger.Sync() }()

    st, err := store.Open(cfg.Store, cfg.StateDir)
    if err != nil {
        logger.Error("open store", zap.String("backend", cfg.Store), zap.Error(err))
        return fmt.Errorf("open %s store in %s: %w", cfg.Store, cfg.StateDir, err)
    }
    defer st.Close()

    opts := tui.Options{
        Settings: cfg,
        Prefs:    store.NewPrefs(st),
        Logger:   logger,
    }
    if len(args) == 1 {
        opts.InitialFile = args[0]
    }
    logger.Info("start", zap.String("version", Version), zap.String("store", cfg.Store))
    return tui.Run(opts)
}

func newFormatCmd() *cobra.Command {
    var write bool
    cmd := &cobra.Command{
        Use:   "format [file|-]",
        Short: "Reflow C++ source with the editor's formatter and print it",
        Args:  cobra.MaximumNArgs(1),
        RunE: func(cmd *cobra.Command, args []string) error {
            name, src, err := readInput(cmd, args)
            if err != nil {
                return err
            }
            out, err := codetext.Format(src)
            if err != nil {
                return fmt.Errorf("format %s: %w", name, err)
            }
            if write {
                if name == "-" {
                    return errors.New("--write needs a file argument")
                }
                return os.WriteFile(name, []byte(out+"\n"), 0644)
            }
            fmt.Fprintln(cmd.OutOrStdout(), out)
            return nil
        },
    }
    cmd.Flags().BoolVarP(&write, "write", "w", false, "write the result back to the file")
    return cmd
}

func newStatsCmd() *cobra.Command {
    return &cobra.Command{
        Use:   "stats [file|-]",
        Short: "Print line, character and class/struct counts",
        Args:  cobra.MaximumNArgs(1),
        RunE: func(cmd *cobra.Command, args []string) error {
            name, src, err := readInput(cmd, args)
            if err != nil {
                return err
            }
            c := codetext.Count(src)
            w := cmd.OutOrStdout()
            fmt.Fprintf(w, "%s (%s)\n", name, humanize.Bytes(uint64(len(src))))
            fmt.Fprintf(w, "  Lines:   %d\n  Chars:   %d\n  Objects: %d\n", c.Lines, c.Chars, c.Objects)
            for _, o := range codetext.ObjectNames(src) {
                fmt.Fprintf(w, "    - %s %s (line %d)\n", o.Kind, o.Name, o.Line)
            }
            return nil
        },
    }
}

func newInitCmd() *cobra.Command {
    return &cobra.Command{
        Use:   "init",
        Short: "Scaffold cppviz.yaml and the state directory",
        RunE: func(cmd *cobra.Command, _ []string) error {
            w := cmd.OutOrStdout()
            cfg := config.DefaultSettings()
            if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) {
                if err := cfg.Save(configPath); err != nil {
                    return err
                }
                fmt.Fprintln(w, "Wrote", configPath)
            } else {
                fmt.Fprintln(w, configPath, "already exists; not overwriting")
                if cfg, err = config.Load(configPath); err != nil {
                    return err
                }
            }
            stateDir := cfg.StateDir
            if !filepath.IsAbs(stateDir) {
                stateDir = filepath.Join(filepath.Dir(configPath), stateDir)
            }
            if err := os.MkdirAll(stateDir, 0o755); err != nil {
                return fmt.Errorf("create state dir: %w", err)
            }
            fmt.Fprintf(w, "Initialized %s\n", stateDir)
            return nil
        },
    }
}

// newDoctorCmd reports which runtime prerequisites are missing.
func newDoctorCmd() *cobra.Command {
    return &cobra.Command{
        Use:   "doctor",
        Short: "Check config, preference store and clipboard",
        RunE: func(cmd *cobra.Command, _ []string) error {
            w := cmd.OutOrStdout()
            ok := true
            check := func(label string, err error) {
                if err != nil {
                    fmt.Fprintf(w, "  ✗ %s: %v\n", label, err)
                    ok = false
                    return
                }
                fmt.Fprintf(w, "  ✓ %s\n", label)
            }
            fmt.Fprintln(w, "Checks:")
            cfg, err := loadSettings()
            check("config "+configPath, err)
            if err == nil {
                st, err := store.Open(cfg.Store, cfg.StateDir)
                check(cfg.Store+" store in "+cfg.StateDir, err)
                if err == nil {
                    _ = st.Close()
                }
            }
            if clipboard.Unsupported {
                check("clipboard", errors.New("no clipboard utility found (copy will fail)"))
            } else {
                check("clipboard", nil)
            }
            if !ok {
                return errors.New("some checks failed")
            }
            fmt.Fprintln(w, "All checks passed.")
            return nil
        },
    }
}

/* ---------- helpers ---------- */

// readInput reads the named file, or stdin for "-" or no argument.
func readInput(cmd *cobra.Command, args []string) (string, string, error) {
    name := "-"
    if len(args) == 1 {
        name = args[0]
    }
    var (
        data []byte
        err  error
    )
    if name == "-" {
        data, err = io.ReadAll(cmd.InOrStdin())
    } else {
        data, err = os.ReadFile(name)
    }
    if err != nil {
        return name, "", fmt.Errorf("read %s: %w", name, err)
    }
    return name, strings.ReplaceAll(string(data), "\r\n", "\n"), nil
}
