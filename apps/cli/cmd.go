package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/pkg/errors"

	"github.com/codefm/teachernotebook/core"
	"github.com/codefm/teachernotebook/core/i18n"
	"github.com/codefm/teachernotebook/core/locale"
	"github.com/codefm/teachernotebook/core/school"
	"github.com/codefm/teachernotebook/core/session"
)

var errHelp = errors.New("flag: help requested")

type commandLine struct {
	sessions *session.Service
	schools  *school.Service
	locales  *locale.Resolver
	out      io.Writer

	mutex     sync.Mutex
	loggedOut bool
}

// notifyLoggedOut is subscribed to the session service and runs when the
// remote rejects a token. The shell checks the flag before the next prompt.
func (cli *commandLine) notifyLoggedOut() {
	cli.mutex.Lock()
	cli.loggedOut = true
	cli.mutex.Unlock()
}

func (cli *commandLine) consumeLoggedOut() bool {
	cli.mutex.Lock()
	defer cli.mutex.Unlock()
	out := cli.loggedOut
	cli.loggedOut = false
	return out
}

// t resolves a message key in the active locale.
func (cli *commandLine) t(key string) string {
	return i18n.T(cli.locales.Get(), key)
}

func (cli *commandLine) shell(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	fmt.Fprintln(cli.out, cli.t("app.title"))

	for {
		if cli.consumeLoggedOut() {
			fmt.Fprintln(cli.out, cli.t("login.errors.sessionExpired"))
		}
		if _, err := cli.sessions.Current(); err != nil {
			ok, err := cli.loginPrompt(scanner)
			if err != nil {
				return err
			}
			if !ok { // input exhausted
				return scanner.Err()
			}
			continue
		}

		fmt.Fprint(cli.out, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		args := strings.Fields(scanner.Text())
		if len(args) == 0 {
			continue
		}
		if args[0] == "quit" || args[0] == "exit" {
			return nil
		}
		if err := cli.run(args); err != nil && err != errHelp {
			fmt.Fprintln(cli.out, cli.errorMessage(err))
		}
	}
}

func (cli *commandLine) run(args []string) error {
	switch args[0] {
	case "schools":
		return cli.schoolsCmd(args[1:])
	case "classes":
		return cli.classesCmd(args[1:])
	case "lang":
		return cli.langCmd(args[1:])
	case "timetable":
		return cli.timetableCmd()
	case "refresh":
		return cli.listSchools()
	case "logout":
		cli.sessions.Logout()
		fmt.Fprintln(cli.out, cli.t("dashboard.logout"))
		return nil
	case "help":
		cli.printUsage()
		return errHelp
	default:
		fmt.Fprintf(cli.out, "unknown command %q\n", args[0])
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) printUsage() {
	fmt.Fprint(cli.out, `commands:
  schools                          list schools and their classes
  schools add -name N [-town T] [-tlf P]
  schools update -id ID -name N [-town T] [-tlf P]
  schools delete -id ID
  classes add -school ID -name N -year YY/YY
  classes update -id ID -name N -year YY/YY
  classes delete -id ID
  timetable                        show the weekly timetable
  lang [es|en]                     show or switch the language
  refresh                          reload schools from the server
  logout
  quit
`)
}

// errorMessage renders an error in the active locale where a message key
// applies, falling back to the error text itself.
func (cli *commandLine) errorMessage(err error) string {
	switch cause := errors.Cause(err).(type) {
	case *core.ValidationError:
		return cause.Error()
	case *core.APIError:
		return fmt.Sprintf("%s: %s", cli.t("common.error"), cause.Error())
	}
	switch errors.Cause(err) {
	case session.ErrNoActiveSession:
		return cli.t("login.errors.sessionExpired")
	case session.ErrEmptyCredentials:
		return cli.t("login.errors.emptyFields")
	case session.ErrInvalidCredentials:
		return cli.t("login.errors.invalidCredentials")
	case session.ErrAuthentication:
		return cli.t("login.errors.authError")
	}
	return fmt.Sprintf("%s: %v", cli.t("common.error"), err)
}
