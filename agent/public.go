package agent

import (
	"context"
	"fmt"

	"github.com/etnz/safehaven"
	"github.com/etnz/safehaven/docs"
	"github.com/etnz/safehaven/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// SeriesFile is the annual return series the Analyst reads. The assist
// command points it at the file selected on its command line.
var SeriesFile = "output/sp500.csv"

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			The user is studying cost-effective risk mitigation: how much return a portfolio gives up
			to mitigate losses, and whether a safe haven can raise compound growth instead of lowering it.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			Devise a plan of questions to ask to each expert and come up with the best response to the
			user's request. Prefer figures computed by the Analyst from the local return series over
			numbers from memory.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewStrategist returns the market expert, grounded on search.
func NewStrategist() *Expert {
	return &Expert{
		Name: "Strategist",
		Description: `This is an expert market strategist,
		very well aware of safe haven assets, tail hedging, volatility products,
		gold, treasuries and the academic literature on risk mitigation.
		Ask the Strategist whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert in market strategy and risk mitigation. You can search and find
			about anything related to safe haven assets, hedging instruments, drawdowns and
			market history. You leverage Google Search to ground your assertions in a solid truth.
				`}}},
		},
	}
}

// NewAnalyst returns the quantitative expert. It answers from the local
// annual return series through its function library.
func NewAnalyst() *Expert {

	lib := []Function{Distribution, Comparison}

	return &Expert{
		Name: "Analyst",
		Description: `This is the Analyst. He has the full history of S&P 500 annual total
		returns at hand and can compute frequency distributions and safe haven comparisons
		from it. Ask the Analyst for any figure about the historical returns.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are a quantitative analyst working on the historical S&P 500 annual returns.
				You know how to use the Tools to compute figures from the local return series.
				You are part of a team of experts, yours is everything computed from that series.
				They might ask you questions in approximative language, figure out what they meant.

				Use the available tools to get
				  - the frequency distribution of annual returns by range
				  - the effect of blending a safe haven into the portfolio
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements a simple Function
type Func struct {
	// Declare this function
	Decl *genai.FunctionDeclaration
	// Call this function
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func errResponse(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"error": err.Error(),
		},
	}
}

var Distribution = &Func{
	Decl: &genai.FunctionDeclaration{
		Name: "Distribution",
		Description: `Distribution computes the frequency distribution of the S&P 500 annual
		total returns by return range, with min, mean and max per range.

		` + must(docs.GetTopic("returns")),
		Parameters: &genai.Schema{
			Type:       genai.TypeObject,
			Properties: map[string]*genai.Schema{},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "A markdown-formatted frequency distribution of the annual returns.",
		},
	},
	Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
		s, err := safehaven.LoadSeries(SeriesFile)
		if err != nil {
			return errResponse(id, "Distribution", fmt.Errorf("could not load return series: %w", err))
		}
		return &genai.FunctionResponse{
			ID:   id,
			Name: "Distribution",
			Response: map[string]any{
				"output": renderer.DistributionMarkdown(s),
			},
		}
	},
}

var Comparison = &Func{
	Decl: &genai.FunctionDeclaration{
		Name: "Comparison",
		Description: `Comparison blends a safe haven payoff profile into the S&P 500 at a given
		allocation and reports the payoff per return range next to the unhedged returns.

		` + must(docs.GetTopic("xo")),
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"profile": {
					Type:        genai.TypeString,
					Description: `The safe haven profile name. One of "insurance", "store-of-value" or "cash".`,
				},
				"allocation": {
					Type:        genai.TypeNumber,
					Description: "The fraction of the portfolio allocated to the safe haven, between 0 and 1. Default is 0.1.",
				},
			},
			Required: []string{"profile"},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "A markdown-formatted comparison table per return range.",
		},
	},
	Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
		name, ok := args["profile"].(string)
		if !ok {
			return errResponse(id, "Comparison", fmt.Errorf("argument 'profile' is not a string as expected but %T", args["profile"]))
		}
		profile, ok := safehaven.LookupProfile(name)
		if !ok {
			return errResponse(id, "Comparison", fmt.Errorf("unknown profile %q", name))
		}
		allocation := 0.1
		if a, has := args["allocation"]; has {
			f, ok := a.(float64)
			if !ok {
				return errResponse(id, "Comparison", fmt.Errorf("argument 'allocation' is not a number as expected but %T", a))
			}
			allocation = f
		}
		s, err := safehaven.LoadSeries(SeriesFile)
		if err != nil {
			return errResponse(id, "Comparison", fmt.Errorf("could not load return series: %w", err))
		}
		c, err := safehaven.Compare(s, profile, allocation)
		if err != nil {
			return errResponse(id, "Comparison", err)
		}
		return &genai.FunctionResponse{
			ID:   id,
			Name: "Comparison",
			Response: map[string]any{
				"output": renderer.ComparisonMarkdown(c),
			},
		}
	},
}
