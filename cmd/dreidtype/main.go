// Command dreidtype is a minimal CLI front-end over the dreidtyper library:
// it reads a JSON-encoded MolecularGraph from stdin or a file argument,
// assigns DREIDING atom types and a canonical topology, and prints the
// resulting MolecularTopology as JSON.
//
// coding=utf-8
// @Project : dreid-typer
// @Author  : chengxiang.luo
// @Email   : chengxiang.luo@foxmail.com
// @File    : main.go
// @Software: GoLand
package main

import (
	"encoding/json"
	"flag"
	"io"
	"log"
	"os"

	dreidtyper "github.com/caltechmsc/dreid-typer"
)

func main() {
	rulesPath := flag.String("rules", "", "path to a TOML rule set overriding the built-in default rules")
	flag.Parse()

	input, err := readInput(flag.Args())
	if err != nil {
		log.Fatalf("dreidtype: %v", err)
	}

	var g dreidtyper.MolecularGraph
	if err := json.Unmarshal(input, &g); err != nil {
		log.Fatalf("dreidtype: invalid molecular graph: %v", err)
	}

	var topo *dreidtyper.MolecularTopology
	if *rulesPath != "" {
		ruleSet, err := loadRules(*rulesPath)
		if err != nil {
			log.Fatalf("dreidtype: %v", err)
		}
		topo, err = dreidtyper.AssignTopologyWithRules(&g, ruleSet)
		if err != nil {
			log.Fatalf("dreidtype: %v", err)
		}
	} else {
		topo, err = dreidtyper.AssignTopology(&g)
		if err != nil {
			log.Fatalf("dreidtype: %v", err)
		}
	}

	out, err := json.MarshalIndent(topo, "", "  ")
	if err != nil {
		log.Fatalf("dreidtype: failed to encode topology: %v", err)
	}
	os.Stdout.Write(out)
	os.Stdout.Write([]byte("\n"))
}

// readInput reads the molecular graph from the file named by args[0], or
// from stdin when no file argument was given.
func readInput(args []string) ([]byte, error) {
	if len(args) > 0 {
		return os.ReadFile(args[0])
	}
	return io.ReadAll(os.Stdin)
}

func loadRules(path string) ([]dreidtyper.Rule, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return dreidtyper.ParseRules(string(content))
}
