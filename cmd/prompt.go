/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/notargets/gotrimesh/geometry2D"
)

const (
	promptText  = "Enter the new number of x and y elements (comma-separated, or 'q' to quit): "
	invalidText = "Invalid input. Please enter positive integers separated by a comma or 'q' to quit."
)

var (
	ErrQuit         = errors.New("quit requested")
	ErrInvalidInput = fmt.Errorf("%w: malformed element counts", geometry2D.ErrInvalidArgument)
)

// ParseElementCounts reads "nx,ny" or q/Q
func ParseElementCounts(line string) (cfg geometry2D.RectMeshConfig, err error) {
	line = strings.TrimSpace(line)
	if strings.EqualFold(line, "q") {
		return cfg, ErrQuit
	}
	fields := strings.Split(line, ",")
	if len(fields) != 2 {
		return cfg, fmt.Errorf("%w: want 2 comma separated values, have %d in %q",
			ErrInvalidInput, len(fields), line)
	}
	var counts [2]int
	for i, f := range fields {
		if counts[i], err = strconv.Atoi(strings.TrimSpace(f)); err != nil {
			return cfg, fmt.Errorf("%w: %q is not an integer", ErrInvalidInput, f)
		}
		if counts[i] < 0 {
			return cfg, fmt.Errorf("%w: %d is negative", ErrInvalidInput, counts[i])
		}
	}
	cfg.NumXElements, cfg.NumYElements = counts[0], counts[1]
	return
}

type Prompter struct {
	In  io.Reader
	Out io.Writer
	// Retry asks again after invalid input instead of failing
	Retry bool
	// Interactive writes the prompt text before each read
	Interactive bool
}

func NewStdinPrompter(retry bool) *Prompter {
	return &Prompter{
		In:          os.Stdin,
		Out:         os.Stdout,
		Retry:       retry,
		Interactive: term.IsTerminal(int(os.Stdin.Fd())),
	}
}

func (p *Prompter) ReadConfig() (cfg geometry2D.RectMeshConfig, err error) {
	var (
		reader = bufio.NewReader(p.In)
		line   string
	)
	for {
		if p.Interactive {
			fmt.Fprint(p.Out, promptText)
		}
		line, err = reader.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && len(line) != 0) {
			if errors.Is(err, io.EOF) {
				err = fmt.Errorf("%w: no input", ErrInvalidInput)
			}
			return
		}
		if cfg, err = ParseElementCounts(line); err == nil || errors.Is(err, ErrQuit) {
			return
		}
		fmt.Fprintln(p.Out, invalidText)
		if !p.Retry {
			return
		}
	}
}
