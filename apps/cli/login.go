package main

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"syscall"

	"golang.org/x/term"
)

var readPasswordFunc = term.ReadPassword // mockable

// loginPrompt asks for credentials until a session is established. It
// returns ok=false when the input stream is exhausted.
func (cli *commandLine) loginPrompt(scanner *bufio.Scanner) (bool, error) {
	fmt.Fprintln(cli.out, cli.t("login.subtitle"))

	fmt.Fprintf(cli.out, "%s: ", cli.t("login.username"))
	if !scanner.Scan() {
		return false, nil
	}
	username := strings.TrimSpace(scanner.Text())

	fmt.Fprintf(cli.out, "%s: ", cli.t("login.password"))
	password, err := readPasswordFunc(syscall.Stdin)
	if err != nil {
		return false, err
	}
	fmt.Fprintln(cli.out)

	name, err := cli.sessions.Login(context.Background(), username, string(password))
	if err != nil {
		fmt.Fprintln(cli.out, cli.errorMessage(err))
		return true, nil
	}
	fmt.Fprintf(cli.out, "%s, %s\n", cli.t("login.welcome"), name)
	return true, nil
}
