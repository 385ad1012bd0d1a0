// Package collection provides the ordered containers used across kit.
//
// Dictionary is an insertion-ordered associative container whose keys are either
// strings or int64 values (other integer kinds are normalised to int64). Vector is an
// ordered sequence. Both accept optional evaluators: functions that may rewrite or
// reject every value (and, for dictionaries, every key) before it is stored. A
// *types.Type can be plugged in as an evaluator to build type-constrained containers:
//
//	t := types.MustBuild("int", nil)
//	v := collection.NewVector(collection.WithValueEvaluator(t.Evaluator()))
//	_ = v.Append("42") // stored as int64(42)
//
// The containers are not safe for concurrent mutation.
package collection
