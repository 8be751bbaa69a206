// Package tgmarkup 在纯文本 + 实体列表与 Telegram 的两种标记语法之间互相转换
//
// Telegram 消息由纯文本和一组格式实体（MessageEntity）组成，实体的 offset 和
// length 以 UTF-16 code units 计。这个包把两种人类可写的标记语法解析成
// (text, entities)，也可以把 (text, entities) 渲染回标记：
//
//   - HTML: <b>, <i>, <u>, <s>, <code>, <pre language="go">, <spoiler>,
//     <a href="...">, <emoji id="...">, <blockquote expandable>
//   - Markdown: *bold*, _italic_, __underline__, ~strike~, ||spoiler||,
//     `code`, ```pre```, [text](url), ![emoji](tg://emoji?id=N),
//     "> " quotations and "**> ... ||" expandable quotations
//
// 主要 API：
//   - Parse(): 标记 → Result{Text, Entities}
//   - Render(): (text, entities) → 标记
//   - Messages(): 解析并按长度限制拆分为可发送的消息
//
// 示例：
//
//	res, err := tgmarkup.Parse("*bold* and `code`", tgmarkup.Markdown)
//	if err != nil {
//	    return err
//	}
//	html, err := tgmarkup.Render(res.Text, res.Entities, tgmarkup.HTML)
//
// Every call is a pure computation over its arguments, so concurrent calls
// need no synchronization.
package tgmarkup
