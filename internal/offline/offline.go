// Package offline supplies canned lesson content and quizzes for when the
// content backend is unreachable. The flow substitutes it silently and sets
// a banner flag; learning is never blocked on the network.
package offline

import (
	"fmt"

	"github.com/abhisek/statlab/internal/api"
	"github.com/abhisek/statlab/internal/catalog"
	"github.com/abhisek/statlab/internal/quiz"
)

// Lesson returns a canned lesson record for the given catalog entry. The
// sections are keyed by unit so every lesson in a unit gets topical content
// even when it has no hand-authored deck.
func Lesson(l catalog.Lesson) *api.LessonRecord {
	sections, ok := unitSections[l.Unit]
	if !ok {
		sections = genericSections
	}
	out := make([]api.Section, len(sections))
	copy(out, sections)
	return &api.LessonRecord{
		ID:       l.Slug,
		Title:    l.Title,
		Sections: out,
	}
}

// Questions returns a canned five-question quiz for the given catalog entry.
// IDs are prefixed with the lesson slug so answer records stay attributable
// when attempts from different lessons land in the same event log.
func Questions(l catalog.Lesson) []quiz.Question {
	qs, ok := unitQuestions[l.Unit]
	if !ok {
		qs = unitQuestions[catalog.UnitDescriptive]
	}
	out := make([]quiz.Question, len(qs))
	copy(out, qs)
	for i := range out {
		out[i].ID = fmt.Sprintf("%s-offline-q%d", l.Slug, i+1)
	}
	return out
}

var genericSections = []api.Section{
	{
		Type:    "intro",
		Title:   "Welcome back",
		Content: "Statistics is the practice of collecting, describing, and drawing conclusions from data. This lesson works offline, so you can keep learning without a connection.",
	},
	{
		Type:    "concept",
		Title:   "Population and sample",
		Content: "A **population** is every individual you care about; a **sample** is the subset you actually measure. Good samples are drawn at random so they represent the population fairly.",
	},
	{
		Type:    "example",
		Title:   "Example: polling",
		Content: "For example, a poll of 1,000 voters is a sample standing in for millions. The poll's margin of error describes how far the sample statistic may sit from the population value.",
	},
	{
		Type:    "tip",
		Title:   "Remember",
		Content: "A key takeaway: a statistic describes a sample, a parameter describes a population.",
	},
}

var unitSections = map[catalog.Unit][]api.Section{
	catalog.UnitDescriptive: {
		{
			Type:    "intro",
			Title:   "Describing data",
			Content: "Descriptive statistics condense a dataset into a handful of numbers. The two questions they answer: where is the data centered, and how spread out is it?",
		},
		{
			Type:    "concept",
			Title:   "Measures of center",
			Content: "The **mean** is the arithmetic average: $\\bar{x} = \\frac{\\sum x_i}{n}$. The **median** is the middle value when the data is sorted. The **mode** is the most frequent value.",
		},
		{
			Type:    "example",
			Title:   "Example: skewed incomes",
			Content: "For example, in the incomes {30, 32, 35, 38, 250} (thousands), the mean is 77 but the median is 35. One outlier drags the mean; the median stays put.",
		},
		{
			Type:    "concept",
			Title:   "Measures of spread",
			Content: "The **variance** averages squared deviations from the mean: $s^2 = \\frac{\\sum (x_i - \\bar{x})^2}{n-1}$. Its square root, the **standard deviation** $s$, is in the data's own units.",
		},
		{
			Type:    "practice",
			Title:   "Try it",
			Content: "Try it yourself: compute the mean and median of {2, 4, 4, 5, 10}. Which one moves if you replace 10 with 100?",
		},
	},
	catalog.UnitVisualization: {
		{
			Type:    "intro",
			Title:   "Seeing data",
			Content: "A plot often reveals what a summary statistic hides. Choosing the right chart is choosing which question the reader can answer at a glance.",
		},
		{
			Type:    "concept",
			Title:   "Histograms",
			Content: "A **histogram** buckets numeric data into bins and draws a bar per bin. Bin width matters: too wide hides structure, too narrow shows noise.",
		},
		{
			Type:    "concept",
			Title:   "Box plots",
			Content: "A **box plot** draws the median, the quartiles, and the whiskers in one figure. Points beyond 1.5 times the interquartile range are flagged as outliers.",
		},
		{
			Type:    "example",
			Title:   "Example: comparing groups",
			Content: "For example, side-by-side box plots of test scores per class show at a glance which class has the higher median and which has the wider spread.",
		},
		{
			Type:    "tip",
			Title:   "Remember",
			Content: "A key takeaway: always label axes and units. A chart the reader must decode is a chart that failed.",
		},
	},
	catalog.UnitProbability: {
		{
			Type:    "intro",
			Title:   "Quantifying chance",
			Content: "Probability puts a number between 0 and 1 on uncertainty. Everything that follows in inference is built on it.",
		},
		{
			Type:    "concept",
			Title:   "The basic rules",
			Content: "For any event A, $0 \\le P(A) \\le 1$. For mutually exclusive events, $P(A \\cup B) = P(A) + P(B)$. For independent events, $P(A \\cap B) = P(A) \\times P(B)$.",
		},
		{
			Type:    "concept",
			Title:   "Conditional probability",
			Content: "**Conditional probability** updates a probability given new information: $P(A \\mid B) = \\frac{P(A \\cap B)}{P(B)}$. Independence means the update changes nothing.",
		},
		{
			Type:    "example",
			Title:   "Example: two dice",
			Content: "For example, the chance of rolling two sixes is $\\frac{1}{6} \\times \\frac{1}{6} = \\frac{1}{36}$, because the dice are independent.",
		},
		{
			Type:    "practice",
			Title:   "Try it",
			Content: "Try it yourself: a bag holds 3 red and 2 blue marbles. What is the probability of drawing red, then blue, without replacement?",
		},
	},
	catalog.UnitDistributions: {
		{
			Type:    "intro",
			Title:   "Patterns of variation",
			Content: "A distribution describes which values a variable takes and how often. Recognizing a distribution's shape tells you which tools apply.",
		},
		{
			Type:    "concept",
			Title:   "The normal distribution",
			Content: "The **normal distribution** is the symmetric bell curve described by its mean $\\mu$ and standard deviation $\\sigma$. About 68% of values fall within $\\mu \\pm \\sigma$, 95% within $\\mu \\pm 2\\sigma$.",
		},
		{
			Type:    "concept",
			Title:   "Z-scores",
			Content: "A **z-score** measures distance from the mean in standard deviations: $z = \\frac{x - \\mu}{\\sigma}$. It lets you compare values from different scales on one footing.",
		},
		{
			Type:    "example",
			Title:   "Example: exam scores",
			Content: "For example, a score of 85 on an exam with $\\mu = 70$ and $\\sigma = 10$ has $z = 1.5$, better than roughly 93% of test takers.",
		},
		{
			Type:    "tip",
			Title:   "Remember",
			Content: "A key takeaway: the central limit theorem says sample means tend toward a normal distribution as the sample grows, whatever the population looks like.",
		},
	},
	catalog.UnitInference: {
		{
			Type:    "intro",
			Title:   "From sample to population",
			Content: "Inference generalizes from the sample you have to the population you care about, and quantifies how wrong you might be.",
		},
		{
			Type:    "concept",
			Title:   "Confidence intervals",
			Content: "A **confidence interval** is a range of plausible values for a parameter: $\\bar{x} \\pm z \\cdot \\frac{s}{\\sqrt{n}}$. A 95% interval is built by a recipe that captures the truth 95% of the time.",
		},
		{
			Type:    "concept",
			Title:   "Hypothesis tests",
			Content: "A **hypothesis test** asks whether the data is surprising under a null hypothesis $H_0$. The **p-value** is the probability of data at least this extreme if $H_0$ were true; small p-values count against $H_0$.",
		},
		{
			Type:    "example",
			Title:   "Example: a new drug",
			Content: "For example, if patients on a new drug recover faster and the p-value is 0.01, results this strong would occur only 1% of the time by chance alone under the null.",
		},
		{
			Type:    "tip",
			Title:   "Remember",
			Content: "A key takeaway: statistical significance is not practical importance. A tiny effect becomes significant with a big enough sample.",
		},
	},
}

var unitQuestions = map[catalog.Unit][]quiz.Question{
	catalog.UnitDescriptive: {
		{
			Type:         quiz.TypeMCQ,
			Stem:         "Which measure of center is most affected by an extreme outlier?",
			Choices:      []string{"Mean", "Median", "Mode", "Midrange of quartiles"},
			CorrectIndex: 0,
			Explanation:  "The mean uses every value, so one extreme value can drag it far from the bulk of the data.",
		},
		{
			Type:        quiz.TypeTF,
			Stem:        "The standard deviation is measured in the same units as the data.",
			CorrectBool: true,
			Explanation: "Variance is in squared units; taking the square root brings it back to the data's units.",
		},
		{
			Type:         quiz.TypeMCQ,
			Stem:         "For the dataset {1, 2, 2, 5, 10}, what is the median?",
			Choices:      []string{"1", "2", "4", "5"},
			CorrectIndex: 1,
			Explanation:  "Sorted, the middle of five values is the third: 2.",
		},
		{
			Type:        quiz.TypeFill,
			Stem:        "The most frequently occurring value in a dataset is called the ____.",
			CorrectText: "mode",
			Explanation: "Mean, median, and mode are the three common measures of center.",
		},
		{
			Type:        quiz.TypeTF,
			Stem:        "If every value in a dataset is identical, the variance is zero.",
			CorrectBool: true,
			Explanation: "No value deviates from the mean, so the average squared deviation is zero.",
		},
	},
	catalog.UnitVisualization: {
		{
			Type:         quiz.TypeMCQ,
			Stem:         "Which chart is best suited to showing the shape of a single numeric variable?",
			Choices:      []string{"Pie chart", "Histogram", "Line chart", "Scatter plot"},
			CorrectIndex: 1,
			Explanation:  "Histograms bin a numeric variable and show where values concentrate.",
		},
		{
			Type:        quiz.TypeTF,
			Stem:        "In a standard box plot, the line inside the box marks the mean.",
			CorrectBool: false,
			Explanation: "The line marks the median; the box spans the quartiles.",
		},
		{
			Type:         quiz.TypeMCQ,
			Stem:         "A box plot flags points as outliers when they fall beyond how many interquartile ranges from the box?",
			Choices:      []string{"0.5", "1.0", "1.5", "3.0"},
			CorrectIndex: 2,
			Explanation:  "The conventional whisker rule is 1.5 times the IQR beyond each quartile.",
		},
		{
			Type:        quiz.TypeFill,
			Stem:        "A plot of one numeric variable against another, one point per observation, is called a ____ plot.",
			CorrectText: "scatter",
			Explanation: "Scatter plots show the relationship between two numeric variables.",
		},
		{
			Type:        quiz.TypeTF,
			Stem:        "Making histogram bins narrower always reveals more real structure in the data.",
			CorrectBool: false,
			Explanation: "Past a point, narrow bins show sampling noise rather than structure.",
		},
	},
	catalog.UnitProbability: {
		{
			Type:         quiz.TypeMCQ,
			Stem:         "Two fair coins are flipped. What is the probability both land heads?",
			Choices:      []string{"1/2", "1/3", "1/4", "3/4"},
			CorrectIndex: 2,
			Explanation:  "The flips are independent: 1/2 times 1/2 is 1/4.",
		},
		{
			Type:        quiz.TypeTF,
			Stem:        "If two events are mutually exclusive, they are also independent.",
			CorrectBool: false,
			Explanation: "Mutually exclusive events are strongly dependent: if one occurs, the other cannot.",
		},
		{
			Type:         quiz.TypeMCQ,
			Stem:         "P(A) = 0.6 and P(B) = 0.5, with A and B independent. What is P(A and B)?",
			Choices:      []string{"0.1", "0.3", "0.55", "1.1"},
			CorrectIndex: 1,
			Explanation:  "Independence means the joint probability is the product: 0.6 times 0.5.",
		},
		{
			Type:        quiz.TypeFill,
			Stem:        "The probability of an event given that another event has occurred is called ____ probability.",
			CorrectText: "conditional",
			Explanation: "Conditional probability is written P(A | B).",
		},
		{
			Type:        quiz.TypeTF,
			Stem:        "A probability of 1.2 can describe a very likely event.",
			CorrectBool: false,
			Explanation: "Probabilities are bounded by 0 and 1.",
		},
	},
	catalog.UnitDistributions: {
		{
			Type:         quiz.TypeMCQ,
			Stem:         "In a normal distribution, roughly what share of values fall within one standard deviation of the mean?",
			Choices:      []string{"50%", "68%", "95%", "99.7%"},
			CorrectIndex: 1,
			Explanation:  "The empirical rule: about 68% within one sigma, 95% within two, 99.7% within three.",
		},
		{
			Type:        quiz.TypeTF,
			Stem:        "A z-score of -2 means the value lies two standard deviations below the mean.",
			CorrectBool: true,
			Explanation: "The sign of a z-score gives the direction, its magnitude the distance in standard deviations.",
		},
		{
			Type:         quiz.TypeMCQ,
			Stem:         "A value of 90 comes from a distribution with mean 75 and standard deviation 10. Its z-score is:",
			Choices:      []string{"0.5", "1.0", "1.5", "2.0"},
			CorrectIndex: 2,
			Explanation:  "(90 - 75) / 10 = 1.5.",
		},
		{
			Type:        quiz.TypeFill,
			Stem:        "The theorem stating that sample means approach a normal distribution as sample size grows is the central ____ theorem.",
			CorrectText: "limit",
			Explanation: "The central limit theorem underpins most large-sample inference.",
		},
		{
			Type:        quiz.TypeTF,
			Stem:        "Every normal distribution is completely described by its mean and standard deviation.",
			CorrectBool: true,
			Explanation: "The two parameters fix the location and the spread of the bell curve.",
		},
	},
	catalog.UnitInference: {
		{
			Type:         quiz.TypeMCQ,
			Stem:         "A p-value of 0.03 means:",
			Choices:      []string{"The null hypothesis has a 3% chance of being true", "Data this extreme occurs 3% of the time if the null is true", "The effect size is 3%", "The test is 97% accurate"},
			CorrectIndex: 1,
			Explanation:  "A p-value is a probability about the data under the null, not about the null itself.",
		},
		{
			Type:        quiz.TypeTF,
			Stem:        "Widening a confidence interval's confidence level from 90% to 99% makes the interval narrower.",
			CorrectBool: false,
			Explanation: "Higher confidence demands a wider interval.",
		},
		{
			Type:         quiz.TypeMCQ,
			Stem:         "Which change shrinks the width of a confidence interval for a mean?",
			Choices:      []string{"A smaller sample", "A larger sample", "A higher confidence level", "A larger standard deviation"},
			CorrectIndex: 1,
			Explanation:  "The width scales with s over the square root of n, so more data tightens it.",
		},
		{
			Type:        quiz.TypeFill,
			Stem:        "The default claim a hypothesis test tries to find evidence against is the ____ hypothesis.",
			CorrectText: "null",
			Explanation: "Tests measure surprise under the null hypothesis H0.",
		},
		{
			Type:        quiz.TypeTF,
			Stem:        "A statistically significant result always matters in practice.",
			CorrectBool: false,
			Explanation: "With a large enough sample, even a trivially small effect reaches significance.",
		},
	},
}
