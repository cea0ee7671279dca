package restaurant

import "iter"

// EvaluationSet is a live union view over a restaurant's two evaluation
// collections. It copies nothing: every operation routes to the underlying
// slices, so mutations through the view are immediately visible on the
// restaurant and vice versa.
type EvaluationSet struct {
	basics    *[]*BasicEvaluation
	completes *[]*CompleteEvaluation
}

// Len returns the combined number of evaluations.
func (s *EvaluationSet) Len() int {
	return len(*s.basics) + len(*s.completes)
}

// Contains reports whether the evaluation is present in either collection.
func (s *EvaluationSet) Contains(e Evaluation) bool {
	switch v := e.(type) {
	case *BasicEvaluation:
		for _, existing := range *s.basics {
			if existing == v {
				return true
			}
		}
	case *CompleteEvaluation:
		for _, existing := range *s.completes {
			if existing == v {
				return true
			}
		}
	}
	return false
}

// Add routes the evaluation to the collection matching its variant and
// reports whether it was added. Unrecognized variants are never added.
func (s *EvaluationSet) Add(e Evaluation) bool {
	switch v := e.(type) {
	case *BasicEvaluation:
		*s.basics = append(*s.basics, v)
		return true
	case *CompleteEvaluation:
		*s.completes = append(*s.completes, v)
		return true
	default:
		return false
	}
}

// Remove detaches the evaluation from whichever collection holds it and
// reports whether it was found.
func (s *EvaluationSet) Remove(e Evaluation) bool {
	switch v := e.(type) {
	case *BasicEvaluation:
		for i, existing := range *s.basics {
			if existing == v {
				*s.basics = append((*s.basics)[:i], (*s.basics)[i+1:]...)
				return true
			}
		}
	case *CompleteEvaluation:
		for i, existing := range *s.completes {
			if existing == v {
				*s.completes = append((*s.completes)[:i], (*s.completes)[i+1:]...)
				return true
			}
		}
	}
	return false
}

// Clear empties both underlying collections.
func (s *EvaluationSet) Clear() {
	*s.basics = nil
	*s.completes = nil
}

// All iterates basic evaluations in their native order, then complete
// evaluations in theirs. Each call starts a fresh traversal.
func (s *EvaluationSet) All() iter.Seq[Evaluation] {
	return func(yield func(Evaluation) bool) {
		for _, e := range *s.basics {
			if !yield(e) {
				return
			}
		}
		for _, e := range *s.completes {
			if !yield(e) {
				return
			}
		}
	}
}

// Replace clears both collections and partitions the incoming evaluations by
// variant. Values of an unrecognized variant are dropped silently, tolerating
// heterogeneous bulk input.
func (s *EvaluationSet) Replace(evaluations []Evaluation) {
	s.Clear()
	for _, e := range evaluations {
		s.Add(e)
	}
}
