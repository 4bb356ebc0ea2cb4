/*
 * Licensed to the Apache Software Foundation (ASF) under one or more
 * contributor license agreements.  See the NOTICE file distributed with
 * this work for additional information regarding copyright ownership.
 * The ASF licenses this file to You under the Apache License, Version 2.0
 * (the "License"); you may not use this file except in compliance with
 * the License.  You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasttemplate"

	"mosn.io/headermap/pkg/config"
	"mosn.io/headermap/pkg/header"
	"mosn.io/headermap/pkg/log"
	"mosn.io/headermap/pkg/protocol"
	"mosn.io/headermap/pkg/protocol/http"
	"mosn.io/headermap/pkg/stats"
)

var (
	cmdDump = cli.Command{
		Name:      "dump",
		Usage:     "decode an http/1 message head and dump the header map",
		ArgsUsage: "FILE",
		Flags: []cli.Flag{
			cli.StringFlag{
				Name:   "config, c",
				Usage:  "Load header configuration from `FILE`",
				EnvVar: "HEADERMAP_CONFIG",
			}, cli.BoolFlag{
				Name:  "response, r",
				Usage: "the message head is a response",
			}, cli.BoolFlag{
				Name:  "strip, s",
				Usage: "strip the configured header prefixes",
			}, cli.BoolFlag{
				Name:  "request-id",
				Usage: "generate x-request-id if it is absent",
			}, cli.StringFlag{
				Name:  "format, f",
				Usage: "print every header with the `TEMPLATE`, like '{{key}}: {{value}}'",
			}, cli.BoolFlag{
				Name:  "metrics, m",
				Usage: "print the header metrics in the prometheus text format",
			}, cli.StringFlag{
				Name:   "log-level, l",
				Usage:  "log level, trace|debug|info|warning|error",
				EnvVar: "LOG_LEVEL",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return cli.NewExitError("dump needs exactly one FILE", 1)
			}
			cfg := config.DefaultHeaderConfig()
			if path := c.String("config"); path != "" {
				loaded, err := config.Load(path)
				if err != nil {
					return cli.NewExitError(err.Error(), 1)
				}
				cfg = loaded
			}
			level := cfg.LogLevel
			if c.IsSet("log-level") {
				level = c.String("log-level")
			}
			if level != "" {
				log.DefaultLogger.SetLogLevel(log.ParseLevel(level))
			}
			f, err := os.Open(c.Args().First())
			if err != nil {
				return cli.NewExitError(err.Error(), 1)
			}
			defer f.Close()
			opts := dumpOptions{
				response:  c.Bool("response"),
				strip:     c.Bool("strip"),
				requestID: c.Bool("request-id"),
				format:    c.String("format"),
			}
			if err := dump(c.App.Writer, f, cfg, opts); err != nil {
				return cli.NewExitError(err.Error(), 1)
			}
			if c.Bool("metrics") {
				if err := stats.NewPromSink().Write(c.App.Writer); err != nil {
					return cli.NewExitError(err.Error(), 1)
				}
			}
			return nil
		},
	}

	cmdVariants = cli.Command{
		Name:  "variants",
		Usage: "list the header map variants and their well-known headers",
		Action: func(c *cli.Context) error {
			listVariants(c.App.Writer)
			return nil
		},
	}
)

type dumpOptions struct {
	response  bool
	strip     bool
	requestID bool
	format    string
}

func dump(w io.Writer, r io.Reader, cfg *config.HeaderConfig, opts dumpOptions) error {
	var (
		m   *header.Map
		err error
	)
	br := bufio.NewReader(r)
	if opts.response {
		h := &fasthttp.ResponseHeader{}
		if err := h.Read(br); err != nil {
			return errors.Wrap(err, "read response header failed")
		}
		m, err = http.DecodeResponseHeader(h, cfg.ResponseLimit())
	} else {
		h := &fasthttp.RequestHeader{}
		if err := h.Read(br); err != nil {
			return errors.Wrap(err, "read request header failed")
		}
		m, err = http.DecodeRequestHeader(h, cfg.RequestLimit())
	}
	if err != nil {
		return err
	}
	if opts.strip {
		n := protocol.StripInternalHeaders(m, cfg.Prefixes()...)
		fmt.Fprintf(w, "stripped %d headers\n", n)
	}
	if opts.requestID && !opts.response {
		protocol.EnsureRequestID(m)
	}
	if opts.format == "" {
		m.DumpState(w, 0)
		return nil
	}
	return printEntries(w, m, opts.format)
}

func printEntries(w io.Writer, m *header.Map, format string) error {
	tpl, err := fasttemplate.NewTemplate(format, "{{", "}}")
	if err != nil {
		return errors.Wrapf(err, "invalid format %q", format)
	}
	m.Iterate(func(e *header.Entry) bool {
		_, err = tpl.ExecuteFunc(w, func(w io.Writer, tag string) (int, error) {
			switch tag {
			case "key":
				return io.WriteString(w, e.Key())
			case "value":
				return w.Write(e.ValueBytes())
			case "type":
				return io.WriteString(w, e.ValueType().String())
			}
			return 0, nil
		})
		if err == nil {
			_, err = io.WriteString(w, "\n")
		}
		return err == nil
	})
	return err
}

func listVariants(w io.Writer) {
	for _, v := range header.Variants() {
		names := make([]string, 0, len(v.Inlines()))
		for _, h := range v.Inlines() {
			names = append(names, h.Name().Get())
		}
		fmt.Fprintf(w, "%s (%d): %s\n", v.Name(), len(names), strings.Join(names, " "))
	}
}
