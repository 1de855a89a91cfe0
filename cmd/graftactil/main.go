package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/graftactil/graftactil/internal/cli"
)

func main() {
	inv, err := cli.ParseInvocation(os.Args[1:])
	if err != nil {
		var invErr *cli.InvocationError
		if errors.As(err, &invErr) {
			fmt.Fprintln(os.Stderr, invErr.Message)
			os.Exit(invErr.ExitCode)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.ExitInternalError)
	}

	result, execErr := cli.Execute(context.Background(), inv, os.Stderr)
	if execErr != nil {
		fmt.Fprintln(os.Stderr, execErr)
	}
	for _, path := range result.Written {
		fmt.Println(path)
	}
	os.Exit(result.ExitCode)
}
