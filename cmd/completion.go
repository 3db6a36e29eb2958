package cmd

import (
	"context"
	"strings"

	"github.com/etnz/moneymanager"
	"github.com/etnz/moneymanager/docs"
	"github.com/etnz/moneymanager/kv"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Complete performs shell completion for the command name when the shell
// asks for it, and exits. It does nothing otherwise.
//
// Install it with COMP_INSTALL=1 mm.
func Complete(name string) {
	Completion().Complete(name)
}

// Completion describes the command line for completion.
func Completion() *complete.Command {
	users := complete.PredictFunc(userNames)
	transaction := &complete.Command{
		Flags: map[string]complete.Predictor{
			"u": users,
			"a": predict.Something,
			"r": predict.Something,
		},
	}
	return &complete.Command{
		Sub: map[string]*complete.Command{
			"add-user":    {Flags: map[string]complete.Predictor{"n": predict.Something}},
			"delete-user": {Flags: map[string]complete.Predictor{"u": users}},
			"users":       {},
			"credit":      transaction,
			"debit":       transaction,
			"history": {Flags: map[string]complete.Predictor{
				"u":    users,
				"head": predict.Something,
			}},
			"query": {Flags: map[string]complete.Predictor{
				"path": predict.Set{"$.users[*].name", "$.users[*].balance", "$.users[?(@.balance < 0)].name"},
			}},
			"export": {Flags: map[string]complete.Predictor{"o": predict.Files("*.json")}},
			"import": {Flags: map[string]complete.Predictor{
				"f":     predict.Files("*.json"),
				"force": predict.Nothing,
			}},
			"topic":    {Args: topics(), Flags: map[string]complete.Predictor{"list": predict.Nothing}},
			"help":     {},
			"flags":    {},
			"commands": {},
		},
		Flags: map[string]complete.Predictor{
			"env":       predict.Files("*"),
			"store":     predict.Set(kv.Kinds),
			"dsn":       predict.Files("*"),
			"key":       predict.Something,
			"currency":  predict.Set{"INR", "USD", "EUR", "GBP", "JPY"},
			"max-users": predict.Something,
			"log-level": predict.Set{"debug", "info", "warn", "error"},
			"raw":       predict.Nothing,
		},
	}
}

// topics predicts the manual topics.
func topics() complete.Predictor {
	all, _ := docs.GetAllTopics()
	return predict.Set(append(all, "*"))
}

// userNames predicts the names of the users in the configured ledger. It only
// reads the storage and gives up silently on any error.
func userNames(prefix string) []string {
	c, err := LoadConfig()
	if err != nil {
		return nil
	}
	data, err := kv.Peek(context.Background(), c.Store, c.DSN, c.Key)
	if err != nil {
		return nil
	}
	users, err := moneymanager.Unmarshal([]byte(data))
	if err != nil {
		return nil
	}

	var names []string
	for _, u := range users {
		if strings.HasPrefix(strings.ToLower(u.Name), strings.ToLower(prefix)) {
			names = append(names, u.Name)
		}
	}
	return names
}
