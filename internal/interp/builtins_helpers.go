package interp

import "math"

// registerHelpers adds the numeric/ML helper routines to the registry.
// These are pure functions over numbers, lists, and matrices (lists of
// lists); none of them needs interpreter internals beyond the value
// taxonomy. Entries the original library declared but never finished stay
// registered as NotImplemented stubs.
func (i *Interpreter) registerHelpers(fns map[string]builtinFn) {
	// Distance metrics
	fns["ml_euclidean_distance"] = i.mlEuclideanDistance
	fns["ml_manhattan_distance"] = i.mlManhattanDistance
	fns["ml_cosine_similarity"] = i.mlCosineSimilarity

	// Regression metrics
	fns["ml_mse"] = i.mlMSE
	fns["ml_mae"] = i.mlMAE
	fns["ml_rmse"] = i.mlRMSE
	fns["ml_r2_score"] = i.mlR2Score

	// Classification metrics
	fns["ml_accuracy"] = i.mlAccuracy
	fns["ml_precision"] = i.mlPrecision
	fns["ml_recall"] = i.mlRecall
	fns["ml_f1_score"] = i.mlF1Score

	// Preprocessing
	fns["ml_standardize"] = i.mlStandardize
	fns["ml_min_max_scale"] = i.mlMinMaxScale

	// Activations (elementwise over a list)
	fns["nn_relu"] = i.nnRelu
	fns["nn_sigmoid"] = i.nnSigmoid
	fns["nn_tanh"] = i.nnTanh
	fns["nn_leaky_relu"] = i.nnLeakyRelu
	fns["nn_elu"] = i.nnElu
	fns["nn_softplus"] = i.nnSoftplus

	// Matrix operations (lists of equal-length number lists)
	fns["matrix_multiply"] = i.matrixMultiply
	fns["matrix_transpose"] = i.matrixTranspose
	fns["matrix_add"] = i.matrixAdd
	fns["matrix_subtract"] = i.matrixSubtract
	fns["matrix_identity"] = i.matrixIdentity

	// Declared but not yet functional
	for _, name := range []string{
		"ml_train_test_split",
		"ml_one_hot_encode",
		"ml_knn_predict",
		"ml_kmeans",
		"ml_confusion_matrix",
		"nn_dropout",
		"nn_batch_norm",
		"nn_mse_loss",
		"nn_binary_crossentropy",
		"nn_categorical_crossentropy",
		"matrix_determinant",
		"gradient_descent_step",
		"adam_step",
	} {
		fns[name] = i.notImplemented(name)
	}
}

// pairedLists unpacks two equal-length lists of numbers.
func (i *Interpreter) pairedLists(name string, args []Value) ([]float64, []float64, *ErrorValue) {
	if len(args) != 2 {
		return nil, nil, i.errorAtCurrent("%s() takes exactly two arguments", name)
	}
	a, errVal := i.numberList(name, args[:1])
	if errVal != nil {
		return nil, nil, errVal
	}
	b, errVal := i.numberList(name, args[1:])
	if errVal != nil {
		return nil, nil, errVal
	}
	if len(a) != len(b) {
		return nil, nil, i.errorAtCurrent("%s() requires lists of equal length", name)
	}
	if len(a) == 0 {
		return nil, nil, i.errorAtCurrent("%s() of empty lists", name)
	}
	return a, b, nil
}

func (i *Interpreter) mlEuclideanDistance(args []Value) Value {
	a, b, errVal := i.pairedLists("ml_euclidean_distance", args)
	if errVal != nil {
		return errVal
	}
	sum := 0.0
	for idx := range a {
		d := a[idx] - b[idx]
		sum += d * d
	}
	return &NumberValue{Value: math.Sqrt(sum)}
}

func (i *Interpreter) mlManhattanDistance(args []Value) Value {
	a, b, errVal := i.pairedLists("ml_manhattan_distance", args)
	if errVal != nil {
		return errVal
	}
	sum := 0.0
	for idx := range a {
		sum += math.Abs(a[idx] - b[idx])
	}
	return &NumberValue{Value: sum}
}

func (i *Interpreter) mlCosineSimilarity(args []Value) Value {
	a, b, errVal := i.pairedLists("ml_cosine_similarity", args)
	if errVal != nil {
		return errVal
	}
	var dot, normA, normB float64
	for idx := range a {
		dot += a[idx] * b[idx]
		normA += a[idx] * a[idx]
		normB += b[idx] * b[idx]
	}
	if normA == 0 || normB == 0 {
		return i.errorAtCurrent("ml_cosine_similarity() of zero vector")
	}
	return &NumberValue{Value: dot / (math.Sqrt(normA) * math.Sqrt(normB))}
}

func (i *Interpreter) mlMSE(args []Value) Value {
	yTrue, yPred, errVal := i.pairedLists("ml_mse", args)
	if errVal != nil {
		return errVal
	}
	return &NumberValue{Value: meanSquaredError(yTrue, yPred)}
}

func (i *Interpreter) mlMAE(args []Value) Value {
	yTrue, yPred, errVal := i.pairedLists("ml_mae", args)
	if errVal != nil {
		return errVal
	}
	sum := 0.0
	for idx := range yTrue {
		sum += math.Abs(yTrue[idx] - yPred[idx])
	}
	return &NumberValue{Value: sum / float64(len(yTrue))}
}

func (i *Interpreter) mlRMSE(args []Value) Value {
	yTrue, yPred, errVal := i.pairedLists("ml_rmse", args)
	if errVal != nil {
		return errVal
	}
	return &NumberValue{Value: math.Sqrt(meanSquaredError(yTrue, yPred))}
}

func meanSquaredError(yTrue, yPred []float64) float64 {
	sum := 0.0
	for idx := range yTrue {
		d := yTrue[idx] - yPred[idx]
		sum += d * d
	}
	return sum / float64(len(yTrue))
}

func (i *Interpreter) mlR2Score(args []Value) Value {
	yTrue, yPred, errVal := i.pairedLists("ml_r2_score", args)
	if errVal != nil {
		return errVal
	}

	mean := 0.0
	for _, y := range yTrue {
		mean += y
	}
	mean /= float64(len(yTrue))

	var ssRes, ssTot float64
	for idx := range yTrue {
		r := yTrue[idx] - yPred[idx]
		t := yTrue[idx] - mean
		ssRes += r * r
		ssTot += t * t
	}
	if ssTot == 0 {
		return i.errorAtCurrent("ml_r2_score() undefined for constant targets")
	}
	return &NumberValue{Value: 1 - ssRes/ssTot}
}

func (i *Interpreter) mlAccuracy(args []Value) Value {
	yTrue, yPred, errVal := i.pairedLists("ml_accuracy", args)
	if errVal != nil {
		return errVal
	}
	correct := 0
	for idx := range yTrue {
		if yTrue[idx] == yPred[idx] {
			correct++
		}
	}
	return &NumberValue{Value: float64(correct) / float64(len(yTrue))}
}

// binaryCounts tallies true/false positives and false negatives, treating
// any non-zero label as the positive class.
func binaryCounts(yTrue, yPred []float64) (tp, fp, fn float64) {
	for idx := range yTrue {
		truePos := yTrue[idx] != 0
		predPos := yPred[idx] != 0
		switch {
		case truePos && predPos:
			tp++
		case !truePos && predPos:
			fp++
		case truePos && !predPos:
			fn++
		}
	}
	return tp, fp, fn
}

func (i *Interpreter) mlPrecision(args []Value) Value {
	yTrue, yPred, errVal := i.pairedLists("ml_precision", args)
	if errVal != nil {
		return errVal
	}
	tp, fp, _ := binaryCounts(yTrue, yPred)
	if tp+fp == 0 {
		return &NumberValue{Value: 0}
	}
	return &NumberValue{Value: tp / (tp + fp)}
}

func (i *Interpreter) mlRecall(args []Value) Value {
	yTrue, yPred, errVal := i.pairedLists("ml_recall", args)
	if errVal != nil {
		return errVal
	}
	tp, _, fn := binaryCounts(yTrue, yPred)
	if tp+fn == 0 {
		return &NumberValue{Value: 0}
	}
	return &NumberValue{Value: tp / (tp + fn)}
}

func (i *Interpreter) mlF1Score(args []Value) Value {
	yTrue, yPred, errVal := i.pairedLists("ml_f1_score", args)
	if errVal != nil {
		return errVal
	}
	tp, fp, fn := binaryCounts(yTrue, yPred)
	denom := 2*tp + fp + fn
	if denom == 0 {
		return &NumberValue{Value: 0}
	}
	return &NumberValue{Value: 2 * tp / denom}
}

// mlStandardize maps each element to (x − mean) / stdev using the
// population standard deviation.
func (i *Interpreter) mlStandardize(args []Value) Value {
	numbers, errVal := i.numberList("ml_standardize", args)
	if errVal != nil {
		return errVal
	}
	if len(numbers) == 0 {
		return i.errorAtCurrent("ml_standardize() of empty list")
	}

	mean := 0.0
	for _, n := range numbers {
		mean += n
	}
	mean /= float64(len(numbers))

	variance := 0.0
	for _, n := range numbers {
		d := n - mean
		variance += d * d
	}
	variance /= float64(len(numbers))
	std := math.Sqrt(variance)
	if std == 0 {
		return i.errorAtCurrent("ml_standardize() of constant list")
	}

	scaled := make([]float64, len(numbers))
	for idx, n := range numbers {
		scaled[idx] = (n - mean) / std
	}
	return numberListValue(scaled)
}

// mlMinMaxScale maps each element to (x − min) / (max − min).
func (i *Interpreter) mlMinMaxScale(args []Value) Value {
	numbers, errVal := i.numberList("ml_min_max_scale", args)
	if errVal != nil {
		return errVal
	}
	if len(numbers) == 0 {
		return i.errorAtCurrent("ml_min_max_scale() of empty list")
	}

	lo, hi := numbers[0], numbers[0]
	for _, n := range numbers[1:] {
		if n < lo {
			lo = n
		}
		if n > hi {
			hi = n
		}
	}
	if lo == hi {
		return i.errorAtCurrent("ml_min_max_scale() of constant list")
	}

	scaled := make([]float64, len(numbers))
	for idx, n := range numbers {
		scaled[idx] = (n - lo) / (hi - lo)
	}
	return numberListValue(scaled)
}

// elementwise applies f to every element of a single list argument.
func (i *Interpreter) elementwise(name string, args []Value, f func(float64) float64) Value {
	numbers, errVal := i.numberList(name, args)
	if errVal != nil {
		return errVal
	}
	out := make([]float64, len(numbers))
	for idx, n := range numbers {
		out[idx] = f(n)
	}
	return numberListValue(out)
}

func (i *Interpreter) nnRelu(args []Value) Value {
	return i.elementwise("nn_relu", args, func(x float64) float64 {
		return math.Max(0, x)
	})
}

func (i *Interpreter) nnSigmoid(args []Value) Value {
	return i.elementwise("nn_sigmoid", args, func(x float64) float64 {
		return 1 / (1 + math.Exp(-x))
	})
}

func (i *Interpreter) nnTanh(args []Value) Value {
	return i.elementwise("nn_tanh", args, math.Tanh)
}

// nnLeakyRelu applies max(alpha·x, x); alpha defaults to 0.01 and may be
// overridden with a second number argument.
func (i *Interpreter) nnLeakyRelu(args []Value) Value {
	alpha := 0.01
	if len(args) == 2 {
		n, ok := args[1].(*NumberValue)
		if !ok {
			return i.errorAtCurrent("nn_leaky_relu() alpha must be a number")
		}
		alpha = n.Value
		args = args[:1]
	}
	return i.elementwise("nn_leaky_relu", args, func(x float64) float64 {
		if x < 0 {
			return alpha * x
		}
		return x
	})
}

func (i *Interpreter) nnElu(args []Value) Value {
	alpha := 1.0
	if len(args) == 2 {
		n, ok := args[1].(*NumberValue)
		if !ok {
			return i.errorAtCurrent("nn_elu() alpha must be a number")
		}
		alpha = n.Value
		args = args[:1]
	}
	return i.elementwise("nn_elu", args, func(x float64) float64 {
		if x < 0 {
			return alpha * (math.Exp(x) - 1)
		}
		return x
	})
}

func (i *Interpreter) nnSoftplus(args []Value) Value {
	return i.elementwise("nn_softplus", args, func(x float64) float64 {
		return math.Log(1 + math.Exp(x))
	})
}

// matrixArg unpacks a list-of-lists-of-numbers argument into a rectangular
// matrix.
func (i *Interpreter) matrixArg(name string, arg Value) ([][]float64, *ErrorValue) {
	list, ok := arg.(*ListValue)
	if !ok {
		return nil, i.errorAtCurrent("%s() requires a matrix (list of lists)", name)
	}
	if len(list.Elements) == 0 {
		return nil, i.errorAtCurrent("%s() of empty matrix", name)
	}

	matrix := make([][]float64, 0, len(list.Elements))
	width := -1
	for _, rowVal := range list.Elements {
		rowList, ok := rowVal.(*ListValue)
		if !ok {
			return nil, i.errorAtCurrent("%s() requires a matrix (list of lists)", name)
		}
		row := make([]float64, 0, len(rowList.Elements))
		for _, el := range rowList.Elements {
			n, ok := el.(*NumberValue)
			if !ok {
				return nil, i.errorAtCurrent("%s() requires numeric matrix entries", name)
			}
			row = append(row, n.Value)
		}
		if width == -1 {
			width = len(row)
		} else if len(row) != width {
			return nil, i.errorAtCurrent("%s() requires rectangular matrices", name)
		}
		matrix = append(matrix, row)
	}
	if width == 0 {
		return nil, i.errorAtCurrent("%s() of empty matrix", name)
	}
	return matrix, nil
}

func matrixValue(m [][]float64) *ListValue {
	rows := make([]Value, 0, len(m))
	for _, row := range m {
		rows = append(rows, numberListValue(row))
	}
	return &ListValue{Elements: rows}
}

func (i *Interpreter) matrixPair(name string, args []Value) ([][]float64, [][]float64, *ErrorValue) {
	if len(args) != 2 {
		return nil, nil, i.errorAtCurrent("%s() takes exactly two arguments", name)
	}
	a, errVal := i.matrixArg(name, args[0])
	if errVal != nil {
		return nil, nil, errVal
	}
	b, errVal := i.matrixArg(name, args[1])
	if errVal != nil {
		return nil, nil, errVal
	}
	return a, b, nil
}

func (i *Interpreter) matrixMultiply(args []Value) Value {
	a, b, errVal := i.matrixPair("matrix_multiply", args)
	if errVal != nil {
		return errVal
	}
	if len(a[0]) != len(b) {
		return i.errorAtCurrent("matrix_multiply() dimension mismatch: %dx%d by %dx%d",
			len(a), len(a[0]), len(b), len(b[0]))
	}

	result := make([][]float64, len(a))
	for r := range a {
		result[r] = make([]float64, len(b[0]))
		for c := range b[0] {
			sum := 0.0
			for k := range b {
				sum += a[r][k] * b[k][c]
			}
			result[r][c] = sum
		}
	}
	return matrixValue(result)
}

func (i *Interpreter) matrixTranspose(args []Value) Value {
	if len(args) != 1 {
		return i.errorAtCurrent("matrix_transpose() takes exactly one argument")
	}
	m, errVal := i.matrixArg("matrix_transpose", args[0])
	if errVal != nil {
		return errVal
	}

	result := make([][]float64, len(m[0]))
	for c := range m[0] {
		result[c] = make([]float64, len(m))
		for r := range m {
			result[c][r] = m[r][c]
		}
	}
	return matrixValue(result)
}

func (i *Interpreter) matrixAdd(args []Value) Value {
	return i.matrixZip("matrix_add", args, func(a, b float64) float64 { return a + b })
}

func (i *Interpreter) matrixSubtract(args []Value) Value {
	return i.matrixZip("matrix_subtract", args, func(a, b float64) float64 { return a - b })
}

func (i *Interpreter) matrixZip(name string, args []Value, f func(a, b float64) float64) Value {
	a, b, errVal := i.matrixPair(name, args)
	if errVal != nil {
		return errVal
	}
	if len(a) != len(b) || len(a[0]) != len(b[0]) {
		return i.errorAtCurrent("%s() requires matrices of equal shape", name)
	}

	result := make([][]float64, len(a))
	for r := range a {
		result[r] = make([]float64, len(a[r]))
		for c := range a[r] {
			result[r][c] = f(a[r][c], b[r][c])
		}
	}
	return matrixValue(result)
}

func (i *Interpreter) matrixIdentity(args []Value) Value {
	n, errVal := i.oneNumber("matrix_identity", args)
	if errVal != nil {
		return errVal
	}
	if n < 1 || n != math.Trunc(n) {
		return i.errorAtCurrent("matrix_identity() requires a positive integer")
	}

	size := int(n)
	result := make([][]float64, size)
	for r := range result {
		result[r] = make([]float64, size)
		result[r][r] = 1
	}
	return matrixValue(result)
}
