package termr

import (
	"fmt"
	"os"

	"github.com/npillmayer/trewrite/terex"
	"github.com/npillmayer/trewrite/terex/terexlang"
	"gopkg.in/yaml.v3"
)

// Job is a batch of rewrites: one rule, applied to a list of expressions.
// Jobs are usually read from YAML files:
//
//	name: swap pairs
//	rule: "pair(X, Y) = pair(Y, X)"
//	expressions:
//	  - "pair(a, b)"
//	  - "f(pair(a, b), c)"
type Job struct {
	Name        string   `yaml:"name,omitempty"`
	Rule        string   `yaml:"rule"`
	Expressions []string `yaml:"expressions"`
}

// Result is the outcome of rewriting a single expression of a job.
// Exactly one of Output and Err is set.
type Result struct {
	Input  string
	Output terex.Expression
	Err    error
}

// LoadJob reads a job from a YAML file.
func LoadJob(path string) (*Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read job file: %w", err)
	}
	return ParseJob(data)
}

// ParseJob decodes a job from YAML.
func ParseJob(data []byte) (*Job, error) {
	job := &Job{}
	if err := yaml.Unmarshal(data, job); err != nil {
		return nil, fmt.Errorf("cannot decode job: %w", err)
	}
	if job.Rule == "" {
		return nil, fmt.Errorf("job %q has no rule", job.Name)
	}
	return job, nil
}

// Run parses the rule of the job and applies it to every expression.
// An invalid rule fails the whole job. Errors for single expressions are
// reported in their results and do not stop the job.
func (job *Job) Run() ([]Result, error) {
	rule, err := terexlang.ParseRule(job.Rule)
	if err != nil {
		return nil, fmt.Errorf("job %q: %w", job.Name, err)
	}
	tracer().Infof("running job %q with rule %s", job.Name, rule)
	rewrite := RewriteWith(rule)
	results := make([]Result, 0, len(job.Expressions))
	for _, input := range job.Expressions {
		r := Result{Input: input}
		var e terex.Expression
		if e, r.Err = terexlang.ParseExpression(input); r.Err == nil {
			r.Output, r.Err = rewrite(e)
		}
		if r.Err != nil {
			tracer().Errorf("job %q: %s: %v", job.Name, input, r.Err)
		}
		results = append(results, r)
	}
	return results, nil
}
