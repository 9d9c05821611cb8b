package reviewreply

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// LogisticRegression is a one-vs-rest linear classifier. Each class owns a
// binary L2-regularized logistic regression whose bias is treated as an extra
// feature with value 1, and is regularized along with the other weights.
type LogisticRegression struct {
	Classes    []string    // sorted class names
	Coef       [][]float64 // per class weights, one per feature
	Intercept  []float64   // per class bias
	Iterations []int       // Newton iterations used per class
	Converged  []bool

	weights []*mat.VecDense
}

// sample is one training row of the design matrix.
type sample struct {
	x     *mat.VecDense
	label string
}

// fitLogistic trains one binary problem per class with Newton's method.
// classWeight scales the penalty C for the positive samples of each problem.
func fitLogistic(rows []sample, classWeight map[string]float64, config TrainingConfig) (*LogisticRegression, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyTrainingData
	}
	dim, _ := rows[0].x.Dims()

	seen := make(map[string]bool)
	for _, r := range rows {
		seen[r.label] = true
	}
	classes := make([]string, 0, len(seen))
	for c := range seen {
		classes = append(classes, c)
	}
	sort.Strings(classes)
	if len(classes) < 2 {
		return nil, fmt.Errorf("need at least two classes, got %d", len(classes))
	}

	// Augment every row with the bias feature.
	aug := make([]*mat.VecDense, len(rows))
	for i, r := range rows {
		v := mat.NewVecDense(dim+1, nil)
		for j := 0; j < dim; j++ {
			v.SetVec(j, r.x.AtVec(j))
		}
		v.SetVec(dim, 1)
		aug[i] = v
	}

	lr := &LogisticRegression{
		Classes:    classes,
		Coef:       make([][]float64, len(classes)),
		Intercept:  make([]float64, len(classes)),
		Iterations: make([]int, len(classes)),
		Converged:  make([]bool, len(classes)),
	}

	for k, class := range classes {
		y := make([]float64, len(rows))
		cost := make([]float64, len(rows))
		for i, r := range rows {
			y[i] = -1
			cost[i] = config.C
			if r.label == class {
				y[i] = 1
				cost[i] = config.C * weightFor(classWeight, class)
			}
		}

		w, iters, ok := newtonBinary(aug, y, cost, config.MaxIterations, config.Tolerance)
		lr.Coef[k] = append([]float64(nil), w.RawVector().Data[:dim]...)
		lr.Intercept[k] = w.AtVec(dim)
		lr.Iterations[k] = iters
		lr.Converged[k] = ok
	}

	lr.prepare()
	return lr, nil
}

func weightFor(classWeight map[string]float64, class string) float64 {
	if w, ok := classWeight[class]; ok {
		return w
	}
	return 1
}

// balancedClassWeights weights each class by n / (classes * count).
func balancedClassWeights(labels []string) map[string]float64 {
	counts := make(map[string]int)
	for _, l := range labels {
		counts[l]++
	}
	weights := make(map[string]float64, len(counts))
	n := float64(len(labels))
	k := float64(len(counts))
	for l, c := range counts {
		weights[l] = n / (k * float64(c))
	}
	return weights
}

// logistic objective: 0.5*|w|^2 + sum cost_i * log(1 + exp(-y_i * w.x_i))
func logisticLoss(w *mat.VecDense, x []*mat.VecDense, y, cost []float64) float64 {
	loss := 0.5 * mat.Dot(w, w)
	for i := range x {
		loss += cost[i] * log1pExp(-y[i]*mat.Dot(w, x[i]))
	}
	return loss
}

// log1pExp computes log(1+exp(z)) without overflow.
func log1pExp(z float64) float64 {
	if z > 0 {
		return z + math.Log1p(math.Exp(-z))
	}
	return math.Log1p(math.Exp(z))
}

func sigmoid(z float64) float64 {
	if z >= 0 {
		return 1 / (1 + math.Exp(-z))
	}
	e := math.Exp(z)
	return e / (1 + e)
}

// newtonBinary minimizes the logistic objective from w = 0. The start point and
// the update rule are fixed, so repeated runs give identical weights.
func newtonBinary(x []*mat.VecDense, y, cost []float64, maxIter int, tol float64) (*mat.VecDense, int, bool) {
	dim, _ := x[0].Dims()
	w := mat.NewVecDense(dim, nil)
	grad := mat.NewVecDense(dim, nil)
	step := mat.NewVecDense(dim, nil)
	trial := mat.NewVecDense(dim, nil)

	var gradNorm0 float64
	for iter := 0; iter < maxIter; iter++ {
		// Gradient and Hessian at w.
		grad.CopyVec(w)
		hess := mat.NewSymDense(dim, nil)
		for i := range x {
			s := sigmoid(y[i] * mat.Dot(w, x[i]))
			grad.AddScaledVec(grad, cost[i]*(s-1)*y[i], x[i])
			hess.SymRankOne(hess, cost[i]*s*(1-s), x[i])
		}
		for j := 0; j < dim; j++ {
			hess.SetSym(j, j, hess.At(j, j)+1)
		}

		gradNorm := mat.Norm(grad, 2)
		if iter == 0 {
			gradNorm0 = gradNorm
		}
		if gradNorm <= tol*math.Max(gradNorm0, 1) {
			return w, iter, true
		}

		var chol mat.Cholesky
		if ok := chol.Factorize(hess); !ok {
			return w, iter, false
		}
		if err := chol.SolveVecTo(step, grad); err != nil {
			return w, iter, false
		}
		step.ScaleVec(-1, step)

		// Backtracking line search on the objective.
		loss := logisticLoss(w, x, y, cost)
		slope := mat.Dot(grad, step)
		t := 1.0
		for halvings := 0; halvings < 30; halvings++ {
			trial.AddScaledVec(w, t, step)
			if logisticLoss(trial, x, y, cost) <= loss+1e-4*t*slope {
				break
			}
			t /= 2
		}
		w.CopyVec(trial)
	}
	return w, maxIter, false
}

// prepare builds the dense weight vectors used for scoring.
func (lr *LogisticRegression) prepare() {
	lr.weights = make([]*mat.VecDense, len(lr.Coef))
	for k, c := range lr.Coef {
		if len(c) == 0 {
			continue
		}
		lr.weights[k] = mat.NewVecDense(len(c), append([]float64(nil), c...))
	}
}

// DecisionFunction returns the signed distance of x to each class hyperplane,
// in the order of Classes.
func (lr *LogisticRegression) DecisionFunction(x *mat.VecDense) []float64 {
	scores := make([]float64, len(lr.Classes))
	n, _ := x.Dims()
	for k := range lr.Classes {
		scores[k] = lr.Intercept[k]
		if w := lr.weights[k]; w != nil && w.Len() == n {
			scores[k] += mat.Dot(w, x)
		}
	}
	return scores
}

// Predict returns the class with the highest decision score. The first class
// wins ties.
func (lr *LogisticRegression) Predict(x *mat.VecDense) string {
	scores := lr.DecisionFunction(x)
	best := 0
	for k := 1; k < len(scores); k++ {
		if scores[k] > scores[best] {
			best = k
		}
	}
	return lr.Classes[best]
}
