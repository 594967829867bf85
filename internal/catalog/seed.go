package catalog

import "fmt"

func init() {
	lessons := seedLessons()
	if err := validateLessons(lessons); err != nil {
		panic(fmt.Sprintf("catalog: invalid seed data: %v", err))
	}
	reg = buildRegistry(lessons)
}

// seedLessons returns the built-in statistics curriculum.
func seedLessons() []Lesson {
	return []Lesson{
		{
			Slug:          "intro-to-statistics",
			Title:         "What Is Statistics?",
			Unit:          UnitDescriptive,
			Order:         0,
			Summary:       "Populations, samples, and why we summarize data.",
			EstimatedMins: 10,
			Keywords:      []string{"population", "sample", "data"},
		},
		{
			Slug:          "mean-median-mode",
			Title:         "Mean, Median & Mode",
			Unit:          UnitDescriptive,
			Order:         1,
			Summary:       "The three measures of central tendency and when each one lies to you.",
			EstimatedMins: 12,
			Keywords:      []string{"mean", "median", "mode", "average"},
		},
		{
			Slug:          "variance-std-dev",
			Title:         "Variance & Standard Deviation",
			Unit:          UnitDescriptive,
			Order:         2,
			Summary:       "Measuring how spread out data is around its center.",
			EstimatedMins: 15,
			Keywords:      []string{"variance", "spread", "deviation"},
		},
		{
			Slug:          "percentiles-quartiles",
			Title:         "Percentiles & Quartiles",
			Unit:          UnitDescriptive,
			Order:         3,
			Summary:       "Ranking data: quartiles, the IQR, and spotting outliers.",
			EstimatedMins: 12,
			Keywords:      []string{"percentile", "quartile", "iqr", "outlier"},
		},
		{
			Slug:          "histograms-boxplots",
			Title:         "Histograms & Box Plots",
			Unit:          UnitVisualization,
			Order:         4,
			Summary:       "Reading the shape of a distribution from its picture.",
			EstimatedMins: 12,
			Keywords:      []string{"histogram", "box plot", "skew"},
		},
		{
			Slug:          "scatter-correlation",
			Title:         "Scatter Plots & Correlation",
			Unit:          UnitVisualization,
			Order:         5,
			Summary:       "Relationships between two variables, and why correlation is not causation.",
			EstimatedMins: 14,
			Keywords:      []string{"scatter", "correlation", "causation"},
		},
		{
			Slug:          "probability-basics",
			Title:         "Probability Basics",
			Unit:          UnitProbability,
			Order:         6,
			Summary:       "Sample spaces, events, and the rules of probability.",
			EstimatedMins: 15,
			Keywords:      []string{"probability", "event", "sample space"},
		},
		{
			Slug:          "conditional-probability",
			Title:         "Conditional Probability",
			Unit:          UnitProbability,
			Order:         7,
			Summary:       "Updating probabilities with new information, and Bayes' rule.",
			EstimatedMins: 16,
			Keywords:      []string{"conditional", "bayes", "independence"},
		},
		{
			Slug:          "normal-distribution",
			Title:         "The Normal Distribution",
			Unit:          UnitDistributions,
			Order:         8,
			Summary:       "The bell curve, z-scores, and the 68-95-99.7 rule.",
			EstimatedMins: 15,
			Keywords:      []string{"normal", "bell curve", "z-score"},
		},
		{
			Slug:          "sampling-distributions",
			Title:         "Sampling Distributions",
			Unit:          UnitDistributions,
			Order:         9,
			Summary:       "Why sample means behave so predictably: the central limit theorem.",
			EstimatedMins: 16,
			Keywords:      []string{"sampling", "clt", "standard error"},
		},
		{
			Slug:          "confidence-intervals",
			Title:         "Confidence Intervals",
			Unit:          UnitInference,
			Order:         10,
			Summary:       "Estimating a population value with an honest margin of error.",
			EstimatedMins: 16,
			Keywords:      []string{"confidence", "interval", "margin of error"},
		},
		{
			Slug:          "hypothesis-testing",
			Title:         "Hypothesis Testing",
			Unit:          UnitInference,
			Order:         11,
			Summary:       "Null hypotheses, p-values, and what significance actually means.",
			EstimatedMins: 18,
			Keywords:      []string{"hypothesis", "p-value", "significance"},
		},
	}
}
