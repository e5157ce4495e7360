// coding=utf-8
// @Project : dreid-typer
// @Author  : chengxiang.luo
// @Email   : chengxiang.luo@foxmail.com
// @File    : default_rules.go
// @Software: GoLand
package rules

import (
	_ "embed"
	"sync"
)

//go:embed default.rules.toml
var defaultRulesTOML string

var (
	defaultRulesOnce sync.Once
	defaultRules     []Rule
)

// DefaultRules returns the built-in DREIDING rule set, parsing it once on
// first use. A parse failure here is a library bug, not a caller error, so
// it panics rather than returning an error.
func DefaultRules() []Rule {
	defaultRulesOnce.Do(func() {
		parsed, err := ParseRules(defaultRulesTOML)
		if err != nil {
			panic("rules: failed to parse embedded default DREIDING rules: " + err.Error())
		}
		defaultRules = parsed
	})
	return defaultRules
}
