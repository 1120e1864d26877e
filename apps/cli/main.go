package main

import (
	"log"
	"os"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/codefm/teachernotebook/core"
	"github.com/codefm/teachernotebook/core/locale"
	"github.com/codefm/teachernotebook/core/school"
	"github.com/codefm/teachernotebook/core/session"
	apisvc "github.com/codefm/teachernotebook/services/api"
	logsvc "github.com/codefm/teachernotebook/services/logger"
	"github.com/codefm/teachernotebook/storage/state"
)

func main() {
	defer os.Exit(0)

	std := log.New(os.Stderr, "NOTEBOOK : ", log.LstdFlags)
	debug := core.Conf.GetBool("debug")

	var logger core.Logger
	if debug || core.Conf.GetBool("testMode") {
		logger = logsvc.NewStdLogger(std, debug)
	} else {
		logger = logsvc.NewRollbarLogger(std)
	}

	// client-side stores: session in memory, locale on disk
	sessStore := state.NewSessionStore()
	locales := locale.NewResolver(state.NewLocaleStore(core.Conf.GetString("statePath")))

	// validation with bilingual messages
	validate := validator.New()
	uni := core.NewTranslators()
	core.InitValidators(validate, uni)
	school.RegisterValidators(validate, uni)

	baseURL := core.Conf.GetString("apiBaseURL")
	sessSvc := session.NewService(baseURL, sessStore, locales, logger)
	api := apisvc.NewClient(baseURL, sessSvc, locales, logger)
	schoolSvc := school.NewService(api, validate, func() ut.Translator {
		trans, _ := uni.GetTranslator(locales.Get().String())
		return trans
	})

	cli := &commandLine{
		sessions: sessSvc,
		schools:  schoolSvc,
		locales:  locales,
		out:      os.Stdout,
	}
	// returning to the login prompt is the whole of the forced-logout
	// reaction; the locale preference stays as it was
	sessSvc.OnForceLogout(cli.notifyLoggedOut)

	if err := cli.shell(os.Stdin); err != nil {
		logger.Fatal(err.Error())
	}
}
