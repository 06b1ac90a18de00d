package orderedmap

import (
	"context"

	"github.com/denismitr/dll"
	"github.com/denismitr/topokit/utils"
)

type (
	OrderedMap[K comparable, V any] struct {
		m    map[K]*dll.Element[utils.Pair[K, V]]
		list *dll.DoublyLinkedList[utils.Pair[K, V]]
	}

	ForEachFn[K comparable, V any]      func(key K, value V, order int)
	ForEachUntilFn[K comparable, V any] func(key K, value V, order int) bool
)

func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{
		m:    make(map[K]*dll.Element[utils.Pair[K, V]]),
		list: dll.New[utils.Pair[K, V]](),
	}
}

// Set is idempotent
func (om *OrderedMap[K, V]) Set(key K, value V) {
	existingEl, found := om.m[key]
	if !found {
		p := utils.Pair[K, V]{Key: key, Value: value}
		newEl := dll.NewElement(p)
		om.m[key] = newEl
		om.list.PushTail(newEl)
		return
	}

	existingEl.ReplaceValue(utils.Pair[K, V]{Key: key, Value: value})
}

func (om *OrderedMap[K, V]) SetNX(key K, value V) (added bool) {
	_, found := om.m[key]
	if found {
		return false
	}

	p := utils.Pair[K, V]{Key: key, Value: value}
	newEl := dll.NewElement(p)
	om.m[key] = newEl
	om.list.PushTail(newEl)
	return true
}

func (om *OrderedMap[K, V]) HasGet(key K) (V, bool) {
	el, found := om.m[key]
	if !found {
		return utils.GetZero[V](), false
	}

	return el.Value().Value, true
}

func (om *OrderedMap[K, V]) Get(key K) V {
	el, found := om.m[key]
	if !found {
		return utils.GetZero[V]()
	}

	return el.Value().Value
}

func (om *OrderedMap[K, V]) Has(key K) bool {
	_, found := om.m[key]
	return found
}

func (om *OrderedMap[K, V]) HasRemove(key K) (V, bool) {
	el, exists := om.m[key]
	if !exists {
		return utils.GetZero[V](), false
	}

	v := el.Value().Value
	delete(om.m, key)
	om.list.Remove(el)

	return v, true
}

func (om *OrderedMap[K, V]) Len() int {
	return len(om.m)
}

func (om *OrderedMap[K, V]) ForEach(f ForEachFn[K, V]) {
	curr := om.list.Head()
	order := 0
	for curr != nil {
		f(curr.Value().Key, curr.Value().Value, order)
		curr = curr.Next()
		order++
	}
}

func (om *OrderedMap[K, V]) ForEachUntil(ff ForEachUntilFn[K, V]) {
	curr := om.list.Head()
	order := 0
	for curr != nil {
		pair := curr.Value()
		if !ff(pair.Key, pair.Value, order) {
			break
		}

		curr = curr.Next()
		order++
	}
}

func (om *OrderedMap[K, V]) Clone() *OrderedMap[K, V] {
	result := NewOrderedMap[K, V]()

	curr := om.list.Head()
	for curr != nil {
		pair := curr.Value()
		result.Set(pair.Key, pair.Value)
		curr = curr.Next()
	}

	return result
}

func (om *OrderedMap[K, V]) Pairs(ctx context.Context) <-chan utils.Pair[K, V] {
	resultCh := make(chan utils.Pair[K, V])

	go func() {
		defer close(resultCh)

		curr := om.list.Head()
		for curr != nil {
			select {
			case resultCh <- curr.Value():
			case <-ctx.Done():
				return
			}

			curr = curr.Next()
		}
	}()

	return resultCh
}
