// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command trackball projects pointer positions, replays recorded
// drags, serves trackballs over websockets, and inspects a trackball
// interactively in the terminal.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"

	"cogentcore.org/trackball/base/errors"
	"cogentcore.org/trackball/base/logx"
	"cogentcore.org/trackball/replay"
	"cogentcore.org/trackball/server"
	"cogentcore.org/trackball/termview"
	"cogentcore.org/trackball/trackball"
	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
)

// Config is the configuration shared by all commands.
type Config struct {

	// Config is the TOML settings file, if any.
	Config string

	// VeryVerbose, Verbose and Quiet select the log level.
	VeryVerbose bool
	Verbose     bool
	Quiet       bool
}

// Settings returns the trackball settings from the config file,
// or the defaults if there is none.
func (c *Config) Settings() (trackball.Settings, error) {
	s := trackball.DefaultSettings()
	if c.Config == "" {
		return s, nil
	}
	err := s.Open(c.Config)
	return s, err
}

func main() {
	if err := NewRoot().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

// NewRoot returns the root command with all subcommands.
func NewRoot() *cobra.Command {
	cfg := &Config{}
	root := &cobra.Command{
		Use:           "trackball",
		Short:         "Quaternion trackball tools",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logx.UserLevel = logx.LevelFromFlags(cfg.VeryVerbose, cfg.Verbose, cfg.Quiet)
			logx.SetDefaultLogger()
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&cfg.Config, "config", "", "TOML file of trackball settings")
	pf.BoolVar(&cfg.VeryVerbose, "vv", false, "log debug messages")
	pf.BoolVarP(&cfg.Verbose, "verbose", "v", false, "log info messages")
	pf.BoolVarP(&cfg.Quiet, "quiet", "q", false, "only log errors")

	root.AddCommand(projectCmd(), replayCmd(), serveCmd(cfg), inspectCmd(cfg))
	// errors are logged here rather than printed by cobra
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return errors.Log(err)
	})
	for _, c := range root.Commands() {
		run := c.RunE
		c.RunE = func(cmd *cobra.Command, args []string) error {
			return errors.Log(run(cmd, args))
		}
	}
	return root
}

func projectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "project X Y WIDTH HEIGHT",
		Short: "Print the point on the unit sphere for a pixel position",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			var v [4]int
			for i, a := range args {
				n, err := strconv.Atoi(a)
				if err != nil {
					return fmt.Errorf("project: argument %d: %w", i+1, err)
				}
				v[i] = n
			}
			if v[2] <= 0 || v[3] <= 0 {
				return fmt.Errorf("project: %w", trackball.ErrViewport)
			}
			p := trackball.Project(v[0], v[1], v[2], v[3])
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%v\n", p)
			return err
		},
	}
}

func replayCmd() *cobra.Command {
	var watch bool
	var format string
	cmd := &cobra.Command{
		Use:   "replay FILE",
		Short: "Print the rotation after each sample of a TOML or YAML script",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			write := replay.WriteText
			switch format {
			case "text":
			case "json":
				write = replay.WriteJSON
			default:
				return fmt.Errorf("replay: unknown format %q", format)
			}
			out := cmd.OutOrStdout()
			if !watch {
				return replayOnce(out, args[0], write)
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return replay.Watch(ctx, args[0], func(sc *replay.Script, err error) {
				if err != nil {
					errors.Log(err)
					return
				}
				frames, err := sc.Run()
				errors.Log(write(out, frames))
				errors.Log(err)
			})
		},
	}
	cmd.Flags().BoolVar(&watch, "watch", false, "replay again whenever the file changes")
	cmd.Flags().StringVar(&format, "format", "text", "output format: text or json")
	return cmd
}

func replayOnce(w io.Writer, filename string, write func(io.Writer, []replay.Frame) error) error {
	sc, err := replay.Open(filename)
	if err != nil {
		return err
	}
	frames, rerr := sc.Run()
	if err := write(w, frames); err != nil {
		return err
	}
	return rerr
}

func serveCmd(cfg *Config) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve trackballs over websockets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := cfg.Settings()
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return server.New(s).ListenAndServe(ctx, addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "address to listen on")
	return cmd
}

func inspectCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect",
		Short: "Drag a trackball with the mouse in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := cfg.Settings()
			if err != nil {
				return err
			}
			scr, err := tcell.NewScreen()
			if err != nil {
				return fmt.Errorf("inspect: %w", err)
			}
			if err := scr.Init(); err != nil {
				return fmt.Errorf("inspect: %w", err)
			}
			defer scr.Fini()
			return termview.New(scr, trackball.New(s)).Run()
		},
	}
}
