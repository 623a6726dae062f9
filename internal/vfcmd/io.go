package vfcmd

import (
	"io"
	"os"
)

func openInput(st *State, name string) (io.ReadCloser, error) {
	if name == "-" {
		return io.NopCloser(st.Stdin), nil
	}
	return os.Open(name)
}

func openOutput(st *State, name string) (io.WriteCloser, error) {
	if name == "-" {
		return nopWriteCloser{st.Stdout}, nil
	}
	return os.Create(name)
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }
