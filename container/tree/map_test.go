package tree

import (
	"math/rand"
	"sort"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var scenarioKeys = []int{44, 17, 88, 32, 65, 97, 28, 54, 82, 29, 76, 80, 78}

func scenarioTree() *Tree[int, string] {
	tree := NewOrdered[int, string]()
	for _, k := range scenarioKeys {
		tree.Put(k, strconv.Itoa(k))
	}
	return tree
}

func TestMapCreate(t *testing.T) {
	tree := NewOrdered[int, string]()
	assert.Equal(t, 0, tree.Len())
}

func TestMapPutGetOK(t *testing.T) {
	tree := NewOrdered[int, string]()
	tree.Put(20, "twenty")
	tree.Put(10, "ten")
	assert.Equal(t, 2, tree.Len())

	v, ok := tree.Get(20)
	assert.True(t, ok)
	assert.Equal(t, "twenty", v)

	v, ok = tree.Get(10)
	assert.True(t, ok)
	assert.Equal(t, "ten", v)
}

func TestMapGetMutOK(t *testing.T) {
	tree := NewOrdered[int, string]()
	tree.Put(20, "twenty")
	tree.Put(10, "ten")

	p, ok := tree.GetMut(10)
	require.True(t, ok)
	*p = "smth"

	v, _ := tree.Get(10)
	assert.Equal(t, "smth", v)
	assert.Equal(t, 2, tree.Len())
}

func TestMapRemoveOK(t *testing.T) {
	tree := NewOrdered[int, string]()
	tree.Put(20, "twenty")
	tree.Put(10, "ten")

	v, ok := tree.Remove(10)
	assert.True(t, ok)
	assert.Equal(t, "ten", v)

	_, ok = tree.Get(10)
	assert.False(t, ok)
	assert.Equal(t, 1, tree.Len())
}

func TestMapRemoveTwiceOK(t *testing.T) {
	tree := scenarioTree()

	v, ok := tree.Remove(54)
	assert.True(t, ok)
	assert.Equal(t, "54", v)

	v, ok = tree.Remove(54)
	assert.False(t, ok)
	assert.Equal(t, "", v)
	assert.Equal(t, len(scenarioKeys)-1, tree.Len())
}

func TestMapScenarioGetOK(t *testing.T) {
	tree := scenarioTree()

	v, ok := tree.Get(54)
	assert.True(t, ok)
	assert.Equal(t, "54", v)
	assert.Equal(t, len(scenarioKeys), tree.Len())
}

func TestMapScenarioRemove(t *testing.T) {
	for _, tc := range []struct {
		name     string
		key      int
		expected []int
	}{
		{
			name:     "left child",
			key:      32,
			expected: []int{17, 28, 29, 44, 54, 65, 76, 78, 80, 82, 88, 97},
		},
		{
			name:     "right child",
			key:      17,
			expected: []int{28, 29, 32, 44, 54, 65, 76, 78, 80, 82, 88, 97},
		},
		{
			name:     "both children",
			key:      65,
			expected: []int{17, 28, 29, 32, 44, 54, 76, 78, 80, 82, 88, 97},
		},
		{
			name:     "root",
			key:      44,
			expected: []int{17, 28, 29, 32, 54, 65, 76, 78, 80, 82, 88, 97},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			tree := scenarioTree()

			v, ok := tree.Remove(tc.key)

			assert.True(t, ok)
			assert.Equal(t, strconv.Itoa(tc.key), v)
			assert.Equal(t, tc.expected, keys(tree))
			assert.Equal(t, len(tc.expected), tree.Len())
			assertParentLinks(t, tree)
			assert.NoError(t, tree.Check())
		})
	}
}

func TestMapScenarioRemoveBothChildrenRelinks(t *testing.T) {
	tree := scenarioTree()

	_, ok := tree.Remove(65)
	require.True(t, ok)

	// 76 was the minimum of the right subtree of 65 and takes its
	// place, while 80 takes the place of 76 under 82
	assertSubtree(t, tree, 76, 54, 82)
	assertSubtree(t, tree, 82, 80, 0)
	assertSubtree(t, tree, 88, 76, 97)
}

func assertSubtree(t *testing.T, tree *Tree[int, string], key, left, right int) {
	id := tree.find(key)
	require.NotEqual(t, sentinel, id)
	n := tree.nodes.at(id)

	if left == 0 {
		assert.Equal(t, sentinel, n.left)
	} else {
		assert.Equal(t, left, tree.nodes.at(n.left).key)
	}

	if right == 0 {
		assert.Equal(t, sentinel, n.right)
	} else {
		assert.Equal(t, right, tree.nodes.at(n.right).key)
	}
}

func TestMapRemoveAllInInsertOrderOK(t *testing.T) {
	tree := scenarioTree()

	for i, k := range scenarioKeys {
		v, ok := tree.Remove(k)
		require.True(t, ok)
		assert.Equal(t, strconv.Itoa(k), v)
		assert.Equal(t, len(scenarioKeys)-i-1, tree.Len())
		assertParentLinks(t, tree)
		require.NoError(t, tree.Check())
	}

	assert.True(t, tree.Empty())
}

func TestMapRandomOperationsMatchModel(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	tree := NewOrdered[int, int]()
	model := map[int]int{}

	for i := 0; i < 5000; i++ {
		k := r.Intn(200)

		switch r.Intn(4) {
		case 0, 1:
			tree.Put(k, i)
			model[k] = i

			v, ok := tree.Get(k)
			require.True(t, ok)
			require.Equal(t, i, v)

		case 2:
			v, ok := tree.Remove(k)
			expected, exists := model[k]
			require.Equal(t, exists, ok)
			if exists {
				require.Equal(t, expected, v)
			}
			delete(model, k)

			_, ok = tree.Get(k)
			require.False(t, ok)

		default:
			v, ok := tree.Get(k)
			expected, exists := model[k]
			require.Equal(t, exists, ok)
			require.Equal(t, expected, v)
		}

		require.Equal(t, len(model), tree.Len())
		require.NoError(t, tree.Check())
	}

	expected := make([]int, 0, len(model))
	for k := range model {
		expected = append(expected, k)
	}
	sort.Ints(expected)

	actual := keys(tree)
	if len(expected) == 0 {
		assert.Empty(t, actual)
	} else {
		assert.Equal(t, expected, actual)
	}
	assertParentLinks(t, tree)
}

func TestMapCheckDetectsBrokenParent(t *testing.T) {
	tree := scenarioTree()

	id := tree.find(29)
	tree.nodes.at(id).parent = tree.find(44)

	assert.Error(t, tree.Check())
}

func TestMapCheckDetectsBrokenOrder(t *testing.T) {
	tree := scenarioTree()

	tree.nodes.at(tree.find(29)).key = 100

	assert.Error(t, tree.Check())
}

func TestMapCheckDetectsWrongLength(t *testing.T) {
	tree := scenarioTree()
	tree.len++

	assert.Error(t, tree.Check())
}
